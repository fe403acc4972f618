package cli

import (
	"fmt"
	"strconv"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/spf13/cobra"
)

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the players and player_stats tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := db.EnsureSchema(cmd.Context(), a.db, opts.cfg.DatabaseDriver); err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).PrintMessage("schema ready")
				return nil
			})
		},
	}
}

func newPlayersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player roster commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "register NAME",
		Short: "Register a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				player, err := a.tournament.RegisterPlayer(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(player)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of registered players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				count, err := a.tournament.CountPlayers(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(playerCount{Count: count})
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show one player's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("player id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				player, err := a.tournament.GetPlayer(cmd.Context(), id)
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(player)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every player with full counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				players, err := a.tournament.Players(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(players)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every player and match record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := a.tournament.ClearAll(cmd.Context()); err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).PrintMessage("all players removed")
				return nil
			})
		},
	})

	return cmd
}

func newMatchesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Match result commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "report WINNER_ID LOSER_ID",
		Short: "Record the result of a match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			winnerID, err := parseID("winner id", args[0])
			if err != nil {
				return err
			}
			loserID, err := parseID("loser id", args[1])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := a.tournament.ReportMatch(cmd.Context(), winnerID, loserID); err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).PrintMessage(fmt.Sprintf("recorded: %d beat %d", winnerID, loserID))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Zero every player's match counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				if err := a.tournament.ResetMatches(cmd.Context()); err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).PrintMessage("match records reset")
				return nil
			})
		},
	})

	return cmd
}

func newStandingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the standings ordered by wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				standings, err := a.tournament.Standings(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(standings)
				return nil
			})
		},
	}
}

func newPairingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pairings",
		Short: "Print the Swiss pairings for the next round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				pairings, err := a.tournament.SwissPairings(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(pairings)
				return nil
			})
		},
	}
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Publish the roster and pairings to the configured bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				snapshot, err := a.snapshots.Publish(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cmd.OutOrStdout(), opts.output).Print(snapshot)
				return nil
			})
		},
	}
}

func parseID(what, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", what, raw)
	}
	return id, nil
}
