package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

// InitDotEnv loads a .env file into the process environment. Variables that are
// already set win over the file. A missing file is not an error.
type InitDotEnv struct {
	Logger *log.Logger `resolve:""`
	File   string      `config:"DOTENV_FILE" default:".env"`
}

// Initialize loads the file.
func (i InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	err := godotenv.Load(i.File)
	if errors.Is(err, fs.ErrNotExist) {
		return ctx, nil
	}
	if err != nil {
		return ctx, fmt.Errorf("load %s: %w", i.File, err)
	}
	i.Logger.Printf("InitDotEnv: loaded %s", i.File)
	return ctx, nil
}
