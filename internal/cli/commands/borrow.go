package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type borrowCmd struct{}

func (borrowCmd) Name() string        { return "borrow" }
func (borrowCmd) Description() string { return "Запросить книгу у владельца" }
func (borrowCmd) Usage() string       { return "borrow <bookId>" }

func (borrowCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/v1/borrow/"+args[0]), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}

	var v borrowView
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	fmt.Fprintf(Out, "Requested %q, request id %s, due %s\n", v.BookTitle, v.ID, v.DueDate.Format("2006-01-02"))
	return nil
}

func init() { RegisterCmd(borrowCmd{}) }
