package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// transitionCmd covers the four lifecycle actions on a borrow request.
// They differ only in name and the URL suffix they PATCH.
type transitionCmd struct {
	name   string
	desc   string
	action string
}

func (c transitionCmd) Name() string        { return c.name }
func (c transitionCmd) Description() string { return c.desc }
func (c transitionCmd) Usage() string       { return c.name + " <requestId>" }

func (c transitionCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	url := endpoint(cfg, "/api/v1/borrow/"+args[0]+"/"+c.action)
	resp, body, err := api.PatchJSON(ctx, url, nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}

	var v borrowView
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	fmt.Fprintf(Out, "Request %s is now %s\n", v.ID, v.Status)
	return nil
}

func init() {
	RegisterCmd(transitionCmd{"approve", "Одобрить заявку (владелец)", "approve"})
	RegisterCmd(transitionCmd{"reject", "Отклонить заявку (владелец)", "reject"})
	RegisterCmd(transitionCmd{"return", "Сообщить о возврате книги (заёмщик)", "return"})
	RegisterCmd(transitionCmd{"complete", "Подтвердить возврат книги (владелец)", "complete-return"})
}
