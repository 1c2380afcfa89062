package main

import (
	"fmt"
	"strings"

	"mission-service/internal/domain/entity"
	"mission-service/pkg/client"
	"mission-service/pkg/logger"
	"mission-service/pkg/utils"
	"mission-service/templates"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:5000"

type cliState struct {
	apiURL  string
	noColor bool
	verbose bool
}

type missionFlags struct {
	name        string
	launchDate  string
	spaceCraft  string
	destination string
	status      string
}

func (f *missionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "mission name")
	cmd.Flags().StringVar(&f.launchDate, "launch-date", "", "launch date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.spaceCraft, "spacecraft", "", "spacecraft")
	cmd.Flags().StringVar(&f.destination, "destination", "", "destination")
	cmd.Flags().StringVar(&f.status, "status", "",
		"status, one of: "+strings.Join(entity.MissionStatuses, ", "))
}

func (f *missionFlags) input() client.MissionInput {
	return client.MissionInput{
		Name:        f.name,
		LaunchDate:  f.launchDate,
		SpaceCraft:  f.spaceCraft,
		Destination: f.destination,
		Status:      f.status,
	}
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:          "missionctl",
		Short:        "Manage space missions through the missions API",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if state.noColor {
				color.NoColor = true
			}
		},
	}

	apiURL := getenv("MISSION_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	root.PersistentFlags().StringVar(&state.apiURL, "api", apiURL, "missions API base URL (env MISSION_API_URL)")
	root.PersistentFlags().BoolVar(&state.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "log request failures")

	root.AddCommand(
		newListCmd(state),
		newGetCmd(state),
		newAddCmd(state),
		newUpdateCmd(state),
		newDeleteCmd(state),
	)
	return root
}

func (s *cliState) logger() logger.Logger {
	if !s.verbose {
		return logger.NewNopLogger()
	}
	l, err := logger.NewLogger(logger.Options{Level: "debug"})
	if err != nil {
		return logger.NewNopLogger()
	}
	return l
}

func (s *cliState) board() *client.Board {
	return client.NewBoard(client.New(s.apiURL), s.logger())
}

func newListCmd(state *cliState) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := state.board()
			if err := board.Load(cmd.Context()); err != nil {
				return err
			}
			board.GoTo(page)
			return renderBoard(cmd, board)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return cmd
}

func newGetCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mission, err := client.New(state.apiURL).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return templates.RenderMission(cmd.OutOrStdout(), *mission)
		},
	}
}

func newAddCmd(state *cliState) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new mission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := state.board()
			if err := board.Save(cmd.Context(), "", flags.input()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Mission added."))
			return renderBoard(cmd, board)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newUpdateCmd(state *cliState) *cobra.Command {
	flags := &missionFlags{}
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(state.apiURL)
			current, err := c.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			input := mergeInput(*current, flags, cmd)

			board := client.NewBoard(c, state.logger())
			if err := board.Save(cmd.Context(), args[0], input); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Mission updated."))
			return renderBoard(cmd, board)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newDeleteCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := state.board()
			if err := board.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Mission deleted."))
			return renderBoard(cmd, board)
		},
	}
}

// mergeInput starts from the stored mission, like the site's edit form, and
// overrides the fields given on the command line.
func mergeInput(current entity.Mission, flags *missionFlags, cmd *cobra.Command) client.MissionInput {
	input := client.MissionInput{
		Name:        current.Name,
		LaunchDate:  utils.FormatLaunchDate(current.LaunchDate),
		SpaceCraft:  current.SpaceCraft,
		Destination: current.Destination,
		Status:      current.Status,
	}
	if cmd.Flags().Changed("name") {
		input.Name = flags.name
	}
	if cmd.Flags().Changed("launch-date") {
		input.LaunchDate = flags.launchDate
	}
	if cmd.Flags().Changed("spacecraft") {
		input.SpaceCraft = flags.spaceCraft
	}
	if cmd.Flags().Changed("destination") {
		input.Destination = flags.destination
	}
	if cmd.Flags().Changed("status") {
		input.Status = flags.status
	}
	return input
}

func renderBoard(cmd *cobra.Command, board *client.Board) error {
	return templates.RenderPage(cmd.OutOrStdout(), templates.MissionPage{
		Missions: board.Page(),
		Page:     board.CurrentPage(),
		HasPrev:  board.HasPrev(),
		HasNext:  board.HasNext(),
		Total:    len(board.Missions()),
	})
}
