package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eringen/headpress"
	"github.com/eringen/headpress/ads"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	envFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "headpress",
	Short:         "Server-rendered post pages for a headless WordPress",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(v, cfgFile, envFile)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml); keys match the environment names")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, importCmd)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SITE_NAME", "Blog")
	v.SetDefault("SITE_URL", "http://localhost:3000")
	v.SetDefault("SITE_LANGUAGE", "en")
	v.SetDefault("ADDR", ":3000")
	v.SetDefault("DATABASE_PATH", "data/headpress.db")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("WORDPRESS_PLUGIN_SEO", false)
	v.SetDefault("REDIRECT_REFERER", headpress.DefaultRedirectReferer)
	v.SetDefault("POSTS_PRERENDER_COUNT", 5)
	v.SetDefault("RELATED_POSTS_COUNT", 5)
	v.SetDefault("MGID_SCRIPT_BASE", ads.DefaultScriptBase)
	v.SetDefault("LOG_LEVEL", "info")
}

// envKeys are read from the environment even when no config file names them.
var envKeys = []string{
	"SITE_NAME", "SITE_URL", "SITE_DESCRIPTION", "SITE_LANGUAGE", "TWITTER_USERNAME",
	"ADDR", "DATABASE_PATH", "STATIC_DIR",
	"WORDPRESS_GRAPHQL_ENDPOINT", "WORDPRESS_PLUGIN_SEO", "WORDPRESS_REDIRECT_DOMAIN", "REDIRECT_REFERER",
	"POSTS_PRERENDER_COUNT", "RELATED_POSTS_COUNT",
	"MGID_SCRIPT_BASE", "MGID_IN_CONTENT_ID", "MGID_IN_CONTENT_SRC", "MGID_END_CONTENT_ID", "MGID_END_CONTENT_SRC",
	"LOG_LEVEL",
}

func initializeConfig(v *viper.Viper, cfgFile, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

// siteConfig maps the loaded settings onto a headpress.SiteConfig.
func siteConfig(v *viper.Viper) headpress.SiteConfig {
	base := v.GetString("MGID_SCRIPT_BASE")
	return headpress.SiteConfig{
		Name:                v.GetString("SITE_NAME"),
		URL:                 v.GetString("SITE_URL"),
		Description:         v.GetString("SITE_DESCRIPTION"),
		Language:            v.GetString("SITE_LANGUAGE"),
		TwitterUsername:     v.GetString("TWITTER_USERNAME"),
		Addr:                v.GetString("ADDR"),
		DatabasePath:        v.GetString("DATABASE_PATH"),
		StaticDir:           v.GetString("STATIC_DIR"),
		GraphQLEndpoint:     v.GetString("WORDPRESS_GRAPHQL_ENDPOINT"),
		SEOPluginEnabled:    v.GetBool("WORDPRESS_PLUGIN_SEO"),
		RedirectDomain:      v.GetString("WORDPRESS_REDIRECT_DOMAIN"),
		RedirectReferer:     v.GetString("REDIRECT_REFERER"),
		PostsPrerenderCount: v.GetInt("POSTS_PRERENDER_COUNT"),
		RelatedPostsCount:   v.GetInt("RELATED_POSTS_COUNT"),
		Ads: ads.Config{
			InContent:    ads.NewSlot(base, v.GetString("MGID_IN_CONTENT_ID"), v.GetString("MGID_IN_CONTENT_SRC")),
			EndOfContent: ads.NewSlot(base, v.GetString("MGID_END_CONTENT_ID"), v.GetString("MGID_END_CONTENT_SRC")),
		},
	}
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	return headpress.NewLogger(v.GetString("LOG_LEVEL"))
}
