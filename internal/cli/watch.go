package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/realtime"
)

type changeEvent struct {
	Collection string `json:"collection" yaml:"collection"`
	Event      string `json:"event" yaml:"event"`
	At         string `json:"at" yaml:"at"`
}

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <collection>",
		Short: "Print create, update and delete events until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			col := a.client.Collection(args[0])

			emit := func(ev realtime.Event) func() {
				return func() {
					err := a.out.print(changeEvent{
						Collection: args[0],
						Event:      string(ev),
						At:         time.Now().UTC().Format(time.RFC3339),
					})
					if err != nil {
						a.log.Error("failed to print event", logger.Error(err))
					}
				}
			}

			col.Subscribe(ctx).
				OnCreate(emit(realtime.EventCreate)).
				OnUpdate(emit(realtime.EventUpdate)).
				OnDelete(emit(realtime.EventDelete))
			if !col.IsSubscribed() {
				return fmt.Errorf("could not open realtime connection to %s", col.RealtimeURL())
			}
			a.log.InfoContext(ctx, "watching collection", logger.Collection(args[0]))

			<-ctx.Done()
			return col.Unsubscribe()
		},
	}
}
