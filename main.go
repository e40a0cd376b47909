package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fengshuifortune/shop/config"
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/util/crypto"
	"github.com/fengshuifortune/shop/web"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogger() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	initLogger()

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warning("close database err:", err)
		}
		logger.CloseLogger()
	}()

	server := web.NewServer(db)
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
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(db)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			return
		}
	}
}

// resetAdmin restores an admin account's password so an operator locked out
// of the CMS can get back in.
func resetAdmin(email string, password string) error {
	initLogger()

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	result := db.Exec("UPDATE users SET password_hash = ? WHERE email = ? AND role = 'admin'", hash, email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no admin account with email %s", email)
	}
	fmt.Printf("password reset for %s\n", email)
	return nil
}

func main() {
	config.LoadEnvFile()

	rootCmd := &cobra.Command{
		Use:   "fsshop",
		Short: "Feng Shui Fortune Shop web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var email, password string
	resetAdminCmd := &cobra.Command{
		Use:   "reset-admin",
		Short: "Reset an admin account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetAdmin(email, password)
		},
	}
	resetAdminCmd.Flags().StringVar(&email, "email", "admin@fengshuifortuneshop.com", "admin account email")
	resetAdminCmd.Flags().StringVar(&password, "password", "admin1234", "new password")
	rootCmd.AddCommand(resetAdminCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
