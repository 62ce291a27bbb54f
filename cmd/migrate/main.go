package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/database/postgres"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/migration"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/repository"
	"github.com/2025-2-NADS4/Projeto4/internal/config"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

const usage = `uso: migrate <comando>

comandos:
  up                                  aplica as migrações pendentes
  down                                reverte a última migração
  status                              lista as migrações aplicadas
  create-user -email E -password P    cria ou atualiza um usuário local`

func main() {
	log.Setup(logrus.InfoLevel.String())

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	switch os.Args[1] {
	case "up":
		err = migration.Up(ctx, conn.DB)
	case "down":
		err = migration.Down(ctx, conn.DB)
	case "status":
		err = migration.Status(ctx, conn.DB)
	case "create-user":
		err = createUser(ctx, conn, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatalf("Comando %s falhou", os.Args[1])
	}

	logrus.Infof("Comando %s concluído", os.Args[1])
}

func createUser(ctx context.Context, conn *postgres.Connection, args []string) error {
	flags := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := flags.String("email", "", "email do usuário")
	password := flags.String("password", "", "senha em texto puro")
	inactive := flags.Bool("inactive", false, "cria o usuário desativado")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *email == "" || *password == "" {
		return fmt.Errorf("email e password são obrigatórios")
	}

	hash, err := authenticating.HashPassword(*password)
	if err != nil {
		return err
	}

	user, err := repository.NewUserRepository(conn).SaveUser(ctx, &domain.User{
		Email:        *email,
		PasswordHash: hash,
		Active:       !*inactive,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"active":  user.Active,
	}).Info("Usuário salvo")

	return nil
}
