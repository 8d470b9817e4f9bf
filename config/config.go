package config

import "github.com/spf13/viper"

// Config collects every environment-driven knob in one place. Secrets come
// from the environment (or a .env loaded by main), never from files in the
// repo.
type Config struct {
	Port           string
	AllowedOrigins string

	// Backing store selection: "sheets", "mongo" or "memory". When empty the
	// driver is inferred from which endpoints are configured.
	StoreDriver string

	SheetURL      string
	SheetProducts string
	SheetOrders   string
	SheetVouchers string

	MongoURI      string
	MongoDatabase string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	AccessTTLMinutes  int

	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string
	EmailFrom     string
	AdminEmail    string

	R2Bucket          string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Endpoint        string
	R2PublicDomain    string
}

func Load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SHEET_NAME_PRODUCTS", "Products")
	viper.SetDefault("SHEET_NAME_ORDERS", "Orders")
	viper.SetDefault("SHEET_NAME_VOUCHERS", "Vouchers")
	viper.SetDefault("DATABASE_NAME", "storefront")
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("EMAIL_PORT", 587)

	return &Config{
		Port:           viper.GetString("PORT"),
		AllowedOrigins: viper.GetString("ALLOWED_ORIGINS"),

		StoreDriver: viper.GetString("STORE_DRIVER"),

		SheetURL:      viper.GetString("GOOGLE_SHEET_URL"),
		SheetProducts: viper.GetString("SHEET_NAME_PRODUCTS"),
		SheetOrders:   viper.GetString("SHEET_NAME_ORDERS"),
		SheetVouchers: viper.GetString("SHEET_NAME_VOUCHERS"),

		MongoURI:      viper.GetString("MONGODB_URI"),
		MongoDatabase: viper.GetString("DATABASE_NAME"),

		AdminUsername:     viper.GetString("ADMIN_USERNAME"),
		AdminPassword:     viper.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		AccessTTLMinutes:  viper.GetInt("ACCESS_TOKEN_TTL_MINUTES"),

		EmailHost:     viper.GetString("EMAIL_HOST"),
		EmailPort:     viper.GetInt("EMAIL_PORT"),
		EmailUser:     viper.GetString("EMAIL_USER"),
		EmailPassword: viper.GetString("EMAIL_PASSWORD"),
		EmailFrom:     viper.GetString("EMAIL_FROM"),
		AdminEmail:    viper.GetString("ADMIN_EMAIL"),

		R2Bucket:          viper.GetString("R2_BUCKET"),
		R2AccessKeyID:     viper.GetString("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: viper.GetString("R2_SECRET_ACCESS_KEY"),
		R2Endpoint:        viper.GetString("R2_ENDPOINT"),
		R2PublicDomain:    viper.GetString("R2_PUBLIC_DOMAIN"),
	}
}

// Driver resolves the effective store driver from explicit configuration or,
// failing that, from which backends are reachable.
func (c *Config) Driver() string {
	if c.StoreDriver != "" {
		return c.StoreDriver
	}
	if c.SheetURL != "" {
		return "sheets"
	}
	if c.MongoURI != "" {
		return "mongo"
	}
	return "memory"
}
