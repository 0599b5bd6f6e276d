package constants

// viper config keys
const (
	ViperListenAddr           = "listen_addr"
	ViperDatabaseDSN          = "database.dsn"
	ViperSecretKey            = "secret_key"
	ViperDefaultFrameworkCode = "regulations.default_framework"
	ViperDesignConditionsCSV  = "hvac.design_conditions_csv"
)

const (
	CookieKeySecretToken = "secret_token"
	CtxKeyUserID         = "user_id"
)
