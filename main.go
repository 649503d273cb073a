package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movielist/config"
	"movielist/database"
	"movielist/logger"
	"movielist/web"
	"movielist/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
	defer logger.CloseLogger()

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	cfg, err := config.LoadWebConfig(config.GetWebConfigPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer(cfg)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("reloading web server")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			cfg, err = config.LoadWebConfig(config.GetWebConfigPath())
			if err != nil {
				log.Println(err)
				return
			}
			server = web.NewServer(cfg)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func showSetting() {
	cfg, err := config.LoadWebConfig(config.GetWebConfigPath())
	if err != nil {
		fmt.Println("load web config failed:", err)
		return
	}
	fmt.Println("current web settings:")
	fmt.Println("listen:", cfg.Listen)
	fmt.Println("port:", cfg.Port)
	fmt.Println("base path:", cfg.NormalizedBasePath())
	fmt.Println("session max age (min):", cfg.SessionMaxAge)
	fmt.Println("db path:", config.GetDBPath())
}

func resetPassword(email string, password string) {
	if email == "" || password == "" {
		fmt.Println("both --email and --password are required")
		return
	}
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()
	userService := service.NewUserService()
	if err := userService.ResetPassword(email, password); err != nil {
		fmt.Println("reset password failed:", err)
		return
	}
	fmt.Println("reset password success")
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use: "movielist",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var show bool
	var email string
	var password string
	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Show settings or reset a user's password",
		Run: func(cmd *cobra.Command, args []string) {
			if show {
				showSetting()
			}
			if email != "" || password != "" {
				resetPassword(email, password)
			}
		},
	}
	settingCmd.Flags().BoolVar(&show, "show", false, "show current settings")
	settingCmd.Flags().StringVar(&email, "email", "", "user email for password reset")
	settingCmd.Flags().StringVar(&password, "password", "", "new password")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, settingCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
