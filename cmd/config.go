package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/types"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: invalid value %q (%s)", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return err
	}
	return nil
}

// bindFlags binds the persistent flags, and any local flags viper knows a key
// for, to viper. It runs on every invocation because viper.Reset drops bindings.
func bindFlags(cmd *cobra.Command) {
	pf := cmd.Root().PersistentFlags()
	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("storage.path", pf.Lookup("file"))

	if f := cmd.Flags().Lookup("output"); f != nil {
		_ = viper.BindPFlag("display.output", f)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., TODO_VERBOSE
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // storage.path -> TODO_STORAGE_PATH
	viper.AutomaticEnv()

	bindFlags(cmd)

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if home, err := config.GetHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.todorc.yaml
		}
		viper.AddConfigPath(".") // ./.todorc.yaml
		viper.SetConfigName(config.ConfigName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFileFlag != "" {
			path := viper.ConfigFileUsed()
			if path == "" {
				path = cfgFileFlag
			}
			return types.NewPathError(types.KindEnvironment, "read config", path, err)
		}
	}

	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.atomic", false)
	viper.SetDefault("display.locale", config.DefaultLocale)
	viper.SetDefault("display.output", config.DefaultOutput)
	viper.SetDefault("display.color", true)

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		return types.NewError(types.KindEnvironment, "load config", "", err)
	}
	GlobalAppConfig.Display.Output = strings.ToLower(GlobalAppConfig.Display.Output)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		kind := types.KindEnvironment
		if cmd.Flags().Changed("output") {
			kind = types.KindArgument
		}
		return types.NewError(kind, "validate config", err.Error(), nil)
	}

	if file := viper.ConfigFileUsed(); file != "" {
		newLogger(cmd).Debug("using config file", "path", file)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
