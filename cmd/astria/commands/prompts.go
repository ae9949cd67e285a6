package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/pkg/astria"
)

const promptTextWidth = 60

// NewPromptsCommand creates the prompts command group.
func NewPromptsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"prompt"},
		Short:   "Manage prompts",
		Long:    "List, inspect, create, update and delete the prompts of a tune",
	}

	cmd.AddCommand(newPromptsListCommand(v))
	cmd.AddCommand(newPromptsGetCommand(v))
	cmd.AddCommand(newPromptsCreateCommand(v))
	cmd.AddCommand(newPromptsUpdateCommand(v))
	cmd.AddCommand(newPromptsDeleteCommand(v))

	return cmd
}

func newPromptsListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list <tune-id>",
		Short: "List the prompts of a tune",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, err := parseTuneID(args[0])
			if err != nil {
				return err
			}

			params, err := flags.options()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			var (
				prompts    []astria.Prompt
				totalPages int
			)

			if flags.allPages {
				all, err := client.Prompts().All(cmd.Context(), tuneID, params)
				if err != nil {
					return fmt.Errorf("failed to list prompts: %w", err)
				}

				prompts = all.Data
			} else {
				page, err := client.Prompts().List(cmd.Context(), tuneID, params)
				if err != nil {
					return fmt.Errorf("failed to list prompts: %w", err)
				}

				prompts, totalPages = page.Data, page.TotalPages()
			}

			return renderOutput(cmd.OutOrStdout(), v, prompts, func(w io.Writer) error {
				err := renderTable(w, []string{"ID", "Tune", "Name", "Text", "Images", "Created"}, promptRows(prompts), "No prompts found")
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

func promptRows(prompts []astria.Prompt) [][]string {
	rows := make([][]string, 0, len(prompts))
	for _, prompt := range prompts {
		rows = append(rows, []string{
			strconv.FormatInt(prompt.ID, 10),
			strconv.FormatInt(prompt.TuneID, 10),
			formatOptional(prompt.Name),
			formatOptional(truncate(prompt.Text, promptTextWidth)),
			strconv.Itoa(len(prompt.Images)),
			formatTime(prompt.CreatedAt),
		})
	}

	return rows
}

func renderPrompt(w io.Writer, v *viper.Viper, prompt *astria.Prompt) error {
	return renderOutput(w, v, prompt, func(w io.Writer) error {
		return renderProperties(w, [][]string{
			{"ID", strconv.FormatInt(prompt.ID, 10)},
			{"Tune", strconv.FormatInt(prompt.TuneID, 10)},
			{"Name", formatOptional(prompt.Name)},
			{"SID", formatOptional(prompt.SID)},
			{"Description", formatOptional(prompt.Description)},
			{"Text", formatOptional(prompt.Text)},
			{"Negative Prompt", formatOptional(prompt.NegativePrompt)},
			{"Images", joinOrNA(prompt.Images)},
			{"Created", formatTime(prompt.CreatedAt)},
			{"Updated", formatTime(prompt.UpdatedAt)},
		})
	})
}

func parsePromptArgs(args []string) (int64, int64, error) {
	tuneID, err := parseTuneID(args[0])
	if err != nil {
		return 0, 0, err
	}

	promptID, err := parsePromptID(args[1])
	if err != nil {
		return 0, 0, err
	}

	return tuneID, promptID, nil
}

func newPromptsGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <tune-id> <prompt-id>",
		Short: "Show a prompt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, promptID, err := parsePromptArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			resp, err := client.Prompts().Get(cmd.Context(), tuneID, promptID)
			if err != nil {
				return fmt.Errorf("failed to get prompt %d: %w", promptID, err)
			}

			return renderPrompt(cmd.OutOrStdout(), v, resp.Data)
		},
	}
}

func newPromptsCreateCommand(v *viper.Viper) *cobra.Command {
	var request astria.PromptCreateRequest

	cmd := &cobra.Command{
		Use:   "create <tune-id>",
		Short: "Create a prompt",
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

			resp, err := client.Prompts().Create(cmd.Context(), tuneID, &request)
			if err != nil {
				return fmt.Errorf("failed to create prompt: %w", err)
			}

			return renderPrompt(cmd.OutOrStdout(), v, resp.Data)
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "prompt name")
	cmd.Flags().StringVar(&request.SID, "sid", "", "short identifier")
	cmd.Flags().StringVar(&request.Description, "description", "", "description")
	cmd.Flags().StringVar(&request.Text, "text", "", "prompt text")
	cmd.Flags().StringVar(&request.NegativePrompt, "negative-prompt", "", "negative prompt text")
	cmd.Flags().IntVar(&request.NumImages, "num-images", 0, "number of images to generate")
	cmd.Flags().StringVar(&request.Callback, "callback", "", "URL notified when images are ready")

	return cmd
}

func newPromptsUpdateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <tune-id> <prompt-id>",
		Short: "Update a prompt",
		Long:  "Update a prompt. Only the attributes given as flags are changed.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, promptID, err := parsePromptArgs(args)
			if err != nil {
				return err
			}

			request, err := promptUpdateFromFlags(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			resp, err := client.Prompts().Update(cmd.Context(), tuneID, promptID, request)
			if err != nil {
				return fmt.Errorf("failed to update prompt %d: %w", promptID, err)
			}

			return renderPrompt(cmd.OutOrStdout(), v, resp.Data)
		},
	}

	cmd.Flags().String("name", "", "prompt name")
	cmd.Flags().String("sid", "", "short identifier")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("text", "", "prompt text")
	cmd.Flags().String("negative-prompt", "", "negative prompt text")

	return cmd
}

// promptUpdateFromFlags only sets the attributes whose flags were given.
func promptUpdateFromFlags(cmd *cobra.Command) (*astria.PromptUpdateRequest, error) {
	request := &astria.PromptUpdateRequest{}
	fields := map[string]**string{
		"name":            &request.Name,
		"sid":             &request.SID,
		"description":     &request.Description,
		"text":            &request.Text,
		"negative-prompt": &request.NegativePrompt,
	}

	changed := false

	for flag, field := range fields {
		if !cmd.Flags().Changed(flag) {
			continue
		}

		value, _ := cmd.Flags().GetString(flag)
		*field = &value
		changed = true
	}

	if !changed {
		return nil, constants.ErrNothingToUpdate
	}

	return request, nil
}

func newPromptsDeleteCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tune-id> <prompt-id>",
		Short: "Delete a prompt",
		Long:  "Delete a prompt. This cannot be undone.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tuneID, promptID, err := parsePromptArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			_, err = client.Prompts().Delete(cmd.Context(), tuneID, promptID)
			if err != nil {
				return fmt.Errorf("failed to delete prompt %d: %w", promptID, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Prompt %d deleted from tune %d\n", promptID, tuneID)

			return nil
		},
	}
}
