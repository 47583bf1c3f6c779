package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// CONFIGURACIÓN DE LA APP
// =======================
// Se construye UNA sola vez en el arranque y se pasa por referencia a los
// controladores. Nunca se lee os.Getenv en medio de un request.

type GPSConfig struct {
	Habilitada    bool
	RefLat        float64
	RefLng        float64
	MaxDistanciaM float64
}

// Configurada indica si hay un punto de referencia utilizable.
// Habilitada sin punto de referencia = error de configuración → las acciones
// que dependen de GPS se rechazan, nunca se aceptan en silencio.
func (g GPSConfig) Configurada() bool {
	return g.RefLat != 0 || g.RefLng != 0
}

type AppConfig struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret        string
	JWTRefreshSecret string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	CORSOrigins []string

	GPS GPSConfig
}

// =======================
// ENV LOADER
// =======================
func Load() (*AppConfig, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró archivo .env, usando ENV del sistema")
		} else {
			log.Println("✅ Archivo .env cargado!")
		}
	} else {
		log.Println("🚀 Corriendo en Railway, usando ENV del sistema")
	}

	cfg := &AppConfig{
		Port:       GetEnv("PORT", "3000"),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret:        GetEnv("JWT_SECRET"),
		JWTRefreshSecret: GetEnv("JWT_REFRESH_SECRET"),
		AccessTTL:        getEnvDuration("JWT_ACCESS_TTL", 24*time.Hour),
		RefreshTTL:       getEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour),

		CORSOrigins: splitCSV(GetEnv("CORS_ORIGINS", "http://localhost:5173")),

		GPS: GPSConfig{
			Habilitada:    getEnvBool("GPS_VALIDACION", false),
			RefLat:        getEnvFloat("GPS_REF_LAT", 0),
			RefLng:        getEnvFloat("GPS_REF_LNG", 0),
			MaxDistanciaM: getEnvFloat("GPS_MAX_DISTANCIA_M", 100),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET no está definido")
	}
	if cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET no está definido")
	}
	log.Println("✅ Secretos JWT cargados.")

	if cfg.GPS.Habilitada && !cfg.GPS.Configurada() {
		// No abortamos: el fichado rechazará las marcas GPS con motivo explícito.
		log.Println("⚠️ GPS_VALIDACION=true pero sin GPS_REF_LAT/GPS_REF_LNG; las marcas GPS serán rechazadas")
	}

	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvBool(key string, def bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("⚠️ %s=%q no es booleano, usando %v", key, v, def)
		return def
	}
	return b
}

func getEnvFloat(key string, def float64) float64 {
	v, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(v) == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		log.Printf("⚠️ %s=%q no es numérico, usando %v", key, v, def)
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(v) == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		log.Printf("⚠️ %s=%q no es una duración válida, usando %v", key, v, def)
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
