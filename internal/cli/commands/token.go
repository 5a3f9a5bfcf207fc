package commands

import (
	"Enderbrary/internal/cli/repo/fs"
	"Enderbrary/internal/config"
	"context"
	"fmt"
)

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Description() string { return "Сохранить bearer-токен для запросов к серверу" }
func (tokenCmd) Usage() string       { return "token <jwt>" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	store := fs.TokenFSStore{Path: cfg.TokenFile}
	if err := store.Save(args[0]); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "Token saved")
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
