package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/denismitr/collections/collection"
	"github.com/denismitr/collections/internal/member"
	"github.com/denismitr/collections/set"
	"github.com/denismitr/collections/utils"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "load <roster.yaml>",
		Aliases: []string{"l"},
		Short:   "Load a roster and print the members in order",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "could not open roster")
			}
			defer f.Close()

			members, err := a.load(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for m := range members.Values() {
				if _, err := fmt.Fprintln(out, m.Name); err != nil {
					return errors.Wrap(err, "could not write output")
				}
			}

			return nil
		},
	}
}

// load decodes a roster and builds the member collection according to the
// resolved configuration.
func (a *app) load(r io.Reader) (*collection.Collection[member.Member], error) {
	entries, err := member.DecodeRoster(r)
	if err != nil {
		return nil, err
	}

	members := collection.New[member.Member](
		collection.WithCapacity(len(entries)),
		collection.WithValidator("name", member.ValidateName),
		collection.WithLogger(a.logger),
	)

	if a.cfg.Strict {
		if err := members.AddAll(entries...); err != nil {
			return nil, errors.Wrap(err, "roster rejected")
		}
	} else {
		for i, entry := range entries {
			if err := members.Add(entry); err != nil {
				a.logger.Warn().Err(err).Int("entry", i).Msg("skipping roster entry")
			}
		}
	}

	if a.cfg.Unique {
		unique := set.NewOrderedSet[member.Member]()
		if _, err := unique.InsertSlice(members.Items()); err != nil {
			return nil, err
		}
		if members, err = unique.ToCollection(collection.WithLogger(a.logger)); err != nil {
			return nil, err
		}
	}

	if a.cfg.Sort != "none" {
		members = collection.SortByKey(members, func(m member.Member) string {
			return m.Name
		}, utils.ParseOrder(a.cfg.Sort))
	}

	a.logger.Info().
		Int("entries", len(entries)).
		Int("members", members.Len()).
		Stringer("kind", members.Kind()).
		Msg("roster loaded")

	return members, nil
}
