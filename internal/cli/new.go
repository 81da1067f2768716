package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/pkg/errors"
)

// newCommand creates the new command for scaffolding starter figures.
func (c *CLI) newCommand() *cobra.Command {
	var templateName string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Scaffold a starter .tikz file from a built-in template",
		Long: fmt.Sprintf(`Create a new .tikz source file from a built-in template.

Available templates: %s

Without --template, an interactive picker is shown.`, strings.Join(templateNames(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "figure"
			if len(args) == 1 {
				name = strings.TrimSuffix(args[0], ".tikz")
			}
			if err := errors.ValidateFigureName(name); err != nil {
				return err
			}

			tmpl, err := resolveTemplate(templateName)
			if err != nil {
				return err
			}
			if tmpl == nil {
				printInfo("No template selected")
				return nil
			}

			path := name + ".tikz"
			if _, err := os.Stat(path); err == nil {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(tmpl.Body), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Created %s from %s template", path, tmpl.Name)
			printNextStep("Render it", fmt.Sprintf("tikzgo render %s", path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "", "template name (skips the interactive picker)")
	cmd.RegisterFlagCompletionFunc("template", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return templateNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolveTemplate returns the requested template, or runs the interactive
// picker when no name was given. A nil template means the picker was
// dismissed.
func resolveTemplate(name string) (*Template, error) {
	if name != "" {
		t, err := templateByName(name)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	t, ok, err := pickTemplate()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &t, nil
}
