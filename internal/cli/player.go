package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerFullNameCmd())
	cmd.AddCommand(newPlayerTagCmd())
	cmd.AddCommand(newPlayerGenerateTagCmd())
	cmd.AddCommand(newPlayerRollCmd())

	return cmd
}

func playerPath(id string, suffix ...string) string {
	return "/api/v1/players/" + url.PathEscape(id) + strings.Join(suffix, "")
}

func newPlayerCreateCmd() *cobra.Command {
	var name, tag string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		Long: `Create a player. --name takes a full name as "first family"
and is capitalised by the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"full_name": name,
				"gamer_tag": tag,
			}
			var result Player

			if err := client.Post(cmd.Context(), "/api/v1/players", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name, e.g. \"jane doe\"")
	cmd.Flags().StringVar(&tag, "tag", "", "Gamer tag")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(cmd.Context(), playerPath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players ordered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerList

			if err := client.Get(cmd.Context(), "/api/v1/players", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), playerPath(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Deleted player %s", args[0]))
			return nil
		},
	}
}

func newPlayerRenameCmd() *cobra.Command {
	var first, family string

	cmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Set a player's first and family name exactly as given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"first_name":  first,
				"family_name": family,
			}
			var result Player

			if err := client.Put(cmd.Context(), playerPath(args[0], "/name"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&family, "family", "", "Family name")

	return cmd
}

func newPlayerFullNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "full-name <id> <first> <family>",
		Short: "Parse and capitalise a player's full name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"full_name": strings.Join(args[1:], " ")}
			var result Player

			if err := client.Put(cmd.Context(), playerPath(args[0], "/full-name"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <gamer-tag>",
		Short: "Set a player's gamer tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"gamer_tag": args[1]}
			var result Player

			if err := client.Put(cmd.Context(), playerPath(args[0], "/gamer-tag"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerGenerateTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-tag <id> <number>",
		Short: "Generate a gamer tag from the player's name",
		Long: `Generate a gamer tag from the player's name and a number.
Numbers outside 1-100 leave the gamer tag unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number %q", args[1])
			}

			req := map[string]int{"number": num}
			var result Player

			if err := client.Post(cmd.Context(), playerPath(args[0], "/gamer-tag/generate"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <id>",
		Short: "Roll a player's dice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RollResult

			if err := client.Post(cmd.Context(), playerPath(args[0], "/roll"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
