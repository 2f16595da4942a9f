package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sohosai/sos-backend/pkg/apihelpers"
	"github.com/sohosai/sos-backend/pkg/db"
	formService "github.com/sohosai/sos-backend/pkg/form"
	"github.com/sohosai/sos-backend/pkg/utils"
	"gopkg.in/yaml.v2"

	"github.com/gin-gonic/gin"

	formDB "github.com/sohosai/sos-backend/pkg/db/form"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_GIN_DEBUG_MODE               = "GIN_DEBUG_MODE"
	ENV_REGISTRATION_API_LISTEN_PORT = "REGISTRATION_API_LISTEN_PORT"
	ENV_CORS_ALLOW_ORIGINS           = "CORS_ALLOW_ORIGINS"

	ENV_APPLICANT_JWT_SIGN_KEY = "APPLICANT_JWT_SIGN_KEY"

	ENV_INSTANCE_IDS = "INSTANCE_IDS"

	// Variables to override "secrets" in the config file
	ENV_FORM_DB_USERNAME = "FORM_DB_USERNAME"
	ENV_FORM_DB_PASSWORD = "FORM_DB_PASSWORD"
)

var (
	formDBService *formDB.FormDBService
)

type Config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// JWT configs
	ApplicantJWTSignKey string `json:"applicant_jwt_sign_key" yaml:"applicant_jwt_sign_key"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		FormDB db.DBConfigYaml `json:"form_db" yaml:"form_db"`
	} `json:"db_configs" yaml:"db_configs"`
}

var conf Config

func init() {
	conf = initConfig()

	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initDBs()

	formService.Init(formDBService)
}

func initDBs() {
	var err error
	formDBService, err = formDB.NewFormDBService(db.DBConfigFromYamlObj(conf.DBConfigs.FormDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Form DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initConfig() Config {
	conf := Config{}

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	// Override from environment variables
	if os.Getenv(ENV_GIN_DEBUG_MODE) != "" {
		conf.GinConfig.DebugMode = os.Getenv(ENV_GIN_DEBUG_MODE) == "true"
	}
	if port := os.Getenv(ENV_REGISTRATION_API_LISTEN_PORT); port != "" {
		conf.GinConfig.Port = port
	}
	if origins := os.Getenv(ENV_CORS_ALLOW_ORIGINS); origins != "" {
		conf.GinConfig.AllowOrigins = strings.Split(origins, ",")
	}

	// JWT configs
	if signKey := os.Getenv(ENV_APPLICANT_JWT_SIGN_KEY); signKey != "" {
		conf.ApplicantJWTSignKey = signKey
	}
	if conf.ApplicantJWTSignKey == "" {
		slog.Error("Applicant JWT sign key not set - configure APPLICANT_JWT_SIGN_KEY env variable.")
		panic("Applicant JWT sign key not set")
	}

	// Allowed instance IDs
	if instanceIDs := os.Getenv(ENV_INSTANCE_IDS); instanceIDs != "" {
		conf.AllowedInstanceIDs = strings.Split(instanceIDs, ",")
	}
	// Instance IDs end up in DB names, reject anything not URL safe
	for _, instanceID := range conf.AllowedInstanceIDs {
		if !utils.IsURLSafe(instanceID) {
			slog.Error("invalid instance ID", slog.String("instanceID", instanceID))
			panic("invalid instance ID")
		}
	}

	// DB secrets
	if dbUsername := os.Getenv(ENV_FORM_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.FormDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_FORM_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.FormDB.Password = dbPassword
	}

	return conf
}
