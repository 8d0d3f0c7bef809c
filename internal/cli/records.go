package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pocketrest/pkg/collection"
)

// queryFlags are the list parameters shared by list and first.
type queryFlags struct {
	sort   string
	expand string
	fields string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.sort, "sort", "", "Sort expression, e.g. -created")
	cmd.Flags().StringVar(&q.expand, "expand", "", "Relations to expand")
	cmd.Flags().StringVar(&q.fields, "fields", "", "Comma separated fields to return")
}

func (q *queryFlags) params() collection.Params {
	p := collection.Params{}
	if q.sort != "" {
		p["sort"] = q.sort
	}
	if q.expand != "" {
		p["expand"] = q.expand
	}
	if q.fields != "" {
		p["fields"] = q.fields
	}
	return p
}

func (a *app) newListCmd() *cobra.Command {
	var (
		q       queryFlags
		page    int
		perPage int
		filter  string
		full    bool
	)

	cmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "List records of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := q.params()
			if filter != "" {
				params["filter"] = filter
			}

			col := a.client.Collection(args[0])
			var (
				items []collection.Record
				err   error
			)
			if full {
				items, err = col.GetFullList(cmd.Context(), params)
			} else {
				items, err = col.GetList(cmd.Context(), page, perPage, params)
			}
			if err != nil {
				return fmt.Errorf("list %s: %w", args[0], err)
			}
			if items == nil {
				items = []collection.Record{}
			}
			return a.out.print(items)
		},
	}

	q.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 30, "Records per page")
	cmd.Flags().StringVar(&filter, "filter", "", "Filter expression")
	cmd.Flags().BoolVar(&full, "full", false, "Fetch the first 30 records without a total count")
	return cmd
}

func (a *app) newGetCmd() *cobra.Command {
	var q queryFlags

	cmd := &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Fetch one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.client.Collection(args[0]).GetOne(cmd.Context(), args[1], q.params())
			if err != nil {
				return fmt.Errorf("get %s/%s: %w", args[0], args[1], err)
			}
			return a.out.print(rec)
		},
	}

	q.register(cmd)
	return cmd
}

func (a *app) newFirstCmd() *cobra.Command {
	var q queryFlags

	cmd := &cobra.Command{
		Use:   "first <collection> <filter>",
		Short: "Fetch the first record matching a filter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.client.Collection(args[0]).GetFirstListItem(cmd.Context(), args[1], q.params())
			if err != nil {
				return fmt.Errorf("first %s: %w", args[0], err)
			}
			if rec == nil {
				return fmt.Errorf("no %s record matches %q", args[0], args[1])
			}
			return a.out.print(rec)
		},
	}

	q.register(cmd)
	return cmd
}

func (a *app) newCreateCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create <collection>",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseData(data, cmd.InOrStdin())
			if err != nil {
				return err
			}
			rec, err := a.client.Collection(args[0]).Create(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			return a.out.print(rec)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", `Record JSON, "@file" or "-" for stdin`)
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (a *app) newUpdateCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <collection> <id>",
		Short: "Update a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseData(data, cmd.InOrStdin())
			if err != nil {
				return err
			}
			rec, err := a.client.Collection(args[0]).Update(cmd.Context(), args[1], body)
			if err != nil {
				return fmt.Errorf("update %s/%s: %w", args[0], args[1], err)
			}
			return a.out.print(rec)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", `Fields JSON, "@file" or "-" for stdin`)
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.client.Collection(args[0]).Delete(cmd.Context(), args[1]); err != nil {
				return fmt.Errorf("delete %s/%s: %w", args[0], args[1], err)
			}
			return a.out.print(map[string]string{"deleted": args[1]})
		},
	}
}
