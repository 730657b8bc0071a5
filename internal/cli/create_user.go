package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/recipevault/recipevault/internal/auth"
	"github.com/recipevault/recipevault/internal/config"
	"github.com/recipevault/recipevault/internal/database"
	"github.com/recipevault/recipevault/internal/database/users"
)

type CreateUserCommand struct {
	Username     string
	Password     string
	DatabasePath string
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username for the new account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password for the new account (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a user account directly in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s create-user -username alice -password correcthorsebattery\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" || cmd.Password == "" {
		fs.Usage()
		return fmt.Errorf("username and password are required")
	}

	return nil
}

func (cmd *CreateUserCommand) Run() error {
	// Same validation gate the signup endpoint uses
	body := map[string]json.RawMessage{
		"username": mustMarshal(cmd.Username),
		"password": mustMarshal(cmd.Password),
	}
	username, password, verr := auth.ValidateSignup(body)
	if verr != nil {
		return fmt.Errorf("invalid %s: %s", verr.Field, verr.Message)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	service := auth.NewService(users.NewRepository(db.DB), cfg.Auth)

	identity, err := service.CreateUser(username, password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created user %q (id %d)\n", identity.Username, identity.ID)
	return nil
}

func mustMarshal(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
