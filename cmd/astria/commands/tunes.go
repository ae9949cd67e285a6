package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/pkg/astria"
)

// NewTunesCommand creates the tunes command group.
func NewTunesCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tunes",
		Aliases: []string{"tune"},
		Short:   "Manage tunes",
		Long:    "List, inspect, create and delete fine-tuned models",
	}

	cmd.AddCommand(newTunesListCommand(v))
	cmd.AddCommand(newTunesGetCommand(v))
	cmd.AddCommand(newTunesCreateCommand(v))
	cmd.AddCommand(newTunesDeleteCommand(v))

	return cmd
}

func newTunesListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tunes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.options()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			var (
				tunes      []astria.Tune
				totalPages int
			)

			if flags.allPages {
				all, err := client.Tunes().All(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("failed to list tunes: %w", err)
				}

				tunes = all.Data
			} else {
				page, err := client.Tunes().List(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("failed to list tunes: %w", err)
				}

				tunes, totalPages = page.Data, page.TotalPages()
			}

			return renderOutput(cmd.OutOrStdout(), v, tunes, func(w io.Writer) error {
				err := renderTable(w, []string{"ID", "Title", "Name", "Branch", "Model Type", "Trained", "Created"}, tuneRows(tunes), "No tunes found")
				if err != nil {
					return err
				}

				renderPageFooter(w, flags.page, totalPages)

				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func tuneRows(tunes []astria.Tune) [][]string {
	rows := make([][]string, 0, len(tunes))
	for _, tune := range tunes {
		rows = append(rows, []string{
			strconv.FormatInt(tune.ID, 10),
			tune.Title,
			tune.Name,
			formatOptional(tune.Branch),
			formatOptional(tune.ModelType),
			formatTime(tune.TrainedAt),
			formatTime(tune.CreatedAt),
		})
	}

	return rows
}

func newTunesGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <tune-id>",
		Short: "Show a tune",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, err := parseTuneID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			resp, err := client.Tunes().Get(cmd.Context(), tuneID)
			if err != nil {
				return fmt.Errorf("failed to get tune %d: %w", tuneID, err)
			}

			return renderTune(cmd.OutOrStdout(), v, resp.Data)
		},
	}
}

func renderTune(w io.Writer, v *viper.Viper, tune *astria.Tune) error {
	return renderOutput(w, v, tune, func(w io.Writer) error {
		steps := constants.NotAvailable
		if tune.Steps != nil {
			steps = strconv.Itoa(*tune.Steps)
		}

		return renderProperties(w, [][]string{
			{"ID", strconv.FormatInt(tune.ID, 10)},
			{"Title", tune.Title},
			{"Name", tune.Name},
			{"Branch", formatOptional(tune.Branch)},
			{"Model Type", formatOptional(tune.ModelType)},
			{"Token", formatOptional(tune.Token)},
			{"Steps", steps},
			{"Images", strconv.Itoa(len(tune.Images))},
			{"Trained", formatTime(tune.TrainedAt)},
			{"Created", formatTime(tune.CreatedAt)},
			{"Updated", formatTime(tune.UpdatedAt)},
		})
	})
}

func newTunesCreateCommand(v *viper.Viper) *cobra.Command {
	var (
		request astria.TuneCreateRequest
		steps   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tune",
		Long:  "Create a tune from a set of image URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("steps") {
				request.Steps = &steps
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			resp, err := client.Tunes().Create(cmd.Context(), &request)
			if err != nil {
				return fmt.Errorf("failed to create tune: %w", err)
			}

			return renderTune(cmd.OutOrStdout(), v, resp.Data)
		},
	}

	cmd.Flags().StringVar(&request.Title, "title", "", "tune title")
	cmd.Flags().StringVar(&request.Name, "name", "", "class name, e.g. man, woman, dog")
	cmd.Flags().StringVar(&request.Branch, "branch", "", "base model branch")
	cmd.Flags().StringVar(&request.ModelType, "model-type", "", "model type, e.g. lora")
	cmd.Flags().StringVar(&request.Token, "token-word", "", "token word used in prompts")
	cmd.Flags().IntVar(&steps, "steps", 0, "training steps")
	cmd.Flags().StringArrayVar(&request.ImageURLs, "image-url", nil, "training image URL (repeatable)")
	cmd.Flags().StringVar(&request.Callback, "callback", "", "URL notified when training finishes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTunesDeleteCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tune-id>",
		Short: "Delete a tune",
		Long:  "Delete a tune. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, err := parseTuneID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			_, err = client.Tunes().Delete(cmd.Context(), tuneID)
			if err != nil {
				return fmt.Errorf("failed to delete tune %d: %w", tuneID, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tune %d deleted\n", tuneID)

			return nil
		},
	}
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}
