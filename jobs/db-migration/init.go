package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sohosai/sos-backend/pkg/db"
	"github.com/sohosai/sos-backend/pkg/utils"
	"gopkg.in/yaml.v2"

	formDB "github.com/sohosai/sos-backend/pkg/db/form"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_FORM_DB_USERNAME = "FORM_DB_USERNAME"
	ENV_FORM_DB_PASSWORD = "FORM_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		FormDB db.DBConfigYaml `json:"form_db" yaml:"form_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	// Task configurations
	TaskConfigs TaskConfigs `json:"task_configs" yaml:"task_configs"`
}

// Explicit task configuration structs
type TaskConfigs struct {
	DropIndexes   DropIndexesConfig   `json:"drop_indexes" yaml:"drop_indexes"`
	CreateIndexes CreateIndexesConfig `json:"create_indexes" yaml:"create_indexes"`
	GetIndexes    GetIndexesConfig    `json:"get_indexes" yaml:"get_indexes"`
}

type DropIndexesConfig struct {
	FormDB DropIndexesMode `json:"form_db" yaml:"form_db"`
}

type CreateIndexesConfig struct {
	FormDB bool `json:"form_db" yaml:"form_db"`
}

type GetIndexesConfig struct {
	FormDB string `json:"form_db" yaml:"form_db"`
}

type DropIndexesMode string

const (
	DropIndexesModeAll      DropIndexesMode = "all"
	DropIndexesModeDefaults DropIndexesMode = "defaults"
	DropIndexesModeNone     DropIndexesMode = "none"
)

func (mode DropIndexesMode) IsValid() bool {
	switch mode {
	case DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone:
		return true
	default:
		return false
	}
}

func validateConfig() {
	validateDropIndexesMode("task_configs.drop_indexes.form_db", conf.TaskConfigs.DropIndexes.FormDB)
}

func validateDropIndexesMode(field string, mode DropIndexesMode) {
	if !mode.IsValid() {
		panic(fmt.Sprintf("invalid drop indexes mode for %s: %q. Use one of: %v", field, mode, []DropIndexesMode{DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone}))
	}
}

var conf config

var (
	formDBService *formDB.FormDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	validateConfig()

	// Init logger:
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

	// Override secrets from environment variables
	secretsOverride()

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_FORM_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.FormDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_FORM_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.FormDB.Password = dbPassword
	}
}

func isFormDBRequired() bool {
	return conf.TaskConfigs.DropIndexes.FormDB != DropIndexesModeNone ||
		conf.TaskConfigs.CreateIndexes.FormDB ||
		(conf.TaskConfigs.GetIndexes.FormDB != "" && conf.TaskConfigs.GetIndexes.FormDB != "false")
}

func initDBs() {
	if !isFormDBRequired() {
		slog.Info("No tasks configured that require the form DB")
		return
	}

	var err error
	formDBService, err = formDB.NewFormDBService(db.DBConfigFromYamlObj(conf.DBConfigs.FormDB, conf.InstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Form DB", slog.String("error", err.Error()))
		panic(err)
	}

	slog.Info("Database connections established", slog.Bool("form_db", true))
}
