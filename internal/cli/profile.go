package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobdesk/internal/domain/account"
	"jobdesk/internal/filex"
)

func newProfileCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit your profile",
	}
	cmd.AddCommand(newProfileShowCommand(env))
	cmd.AddCommand(newProfileEditCommand(env))
	cmd.AddCommand(newProfileDiscardDraftCommand(env))
	cmd.AddCommand(newProfileImportResumeCommand(env))
	return cmd
}

func newProfileShowCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := env.Store.Session()
			if sess == nil {
				return fmt.Errorf("not signed in")
			}
			fmt.Fprintf(env.Out, "%s <%s>\n", sess.Name, sess.Email)
			if sess.Location != "" {
				fmt.Fprintf(env.Out, "  location: %s\n", sess.Location)
			}
			if len(sess.Skills) > 0 {
				fmt.Fprintf(env.Out, "  skills:   %s\n", strings.Join(sess.Skills, ", "))
			}
			if sess.Bio != "" {
				fmt.Fprintf(env.Out, "  bio:      %s\n", sess.Bio)
			}
			if sess.CompanyName != "" {
				fmt.Fprintf(env.Out, "  company:  %s\n", sess.CompanyName)
			}
			if draft, err := env.Store.ProfileDraft(cmd.Context()); err == nil && draft != nil {
				fmt.Fprintln(env.Out, "  (an unsaved profile draft exists; edit --draft to keep it, profile discard-draft to drop it)")
			}
			return nil
		},
	}
}

func newProfileEditCommand(env *Env) *cobra.Command {
	var name, bio, location, skills, company, website, github, linkedin, resumeFile string
	var asDraft bool
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update profile fields (or stash them as a draft with --draft)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch account.Patch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("bio") {
				patch.Bio = &bio
			}
			if cmd.Flags().Changed("location") {
				patch.Location = &location
			}
			if cmd.Flags().Changed("skills") {
				list := splitList(skills)
				patch.Skills = &list
			}
			if cmd.Flags().Changed("company") {
				patch.CompanyName = &company
			}
			if cmd.Flags().Changed("website") {
				patch.Website = &website
			}
			if cmd.Flags().Changed("github") {
				patch.GithubURL = &github
			}
			if cmd.Flags().Changed("linkedin") {
				patch.LinkedinURL = &linkedin
			}
			if resumeFile != "" {
				url, err := filex.ReadDataURL(resumeFile)
				if err != nil {
					return err
				}
				patch.ResumeURL = &url
			}
			if asDraft {
				if err := env.Store.SaveProfileDraft(cmd.Context(), patch); err != nil {
					return renderError(err)
				}
				fmt.Fprintln(env.Out, "Draft saved.")
				return nil
			}
			if _, err := env.Store.UpdateAccount(cmd.Context(), patch); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(env.Out, "Profile updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	cmd.Flags().StringVar(&company, "company", "", "company name (employers)")
	cmd.Flags().StringVar(&website, "website", "", "website URL")
	cmd.Flags().StringVar(&github, "github", "", "GitHub URL")
	cmd.Flags().StringVar(&linkedin, "linkedin", "", "LinkedIn URL")
	cmd.Flags().StringVar(&resumeFile, "resume", "", "path to a resume file to attach")
	cmd.Flags().BoolVar(&asDraft, "draft", false, "stash the edit instead of saving it")
	return cmd
}

func newProfileDiscardDraftCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "discard-draft",
		Short: "Drop the unsaved profile draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Store.DiscardProfileDraft(cmd.Context()); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(env.Out, "Draft discarded.")
			return nil
		},
	}
}

func newProfileImportResumeCommand(env *Env) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "import-resume <file>",
		Short: "Extract profile fields from a resume file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			profile, err := env.ResumeClient().Parse(cmd.Context(), data, filex.DetectMime(args[0], data))
			if err != nil {
				return fmt.Errorf("failed to parse resume: %w", err)
			}

			fmt.Fprintf(env.Out, "name:     %s\n", profile.Name)
			fmt.Fprintf(env.Out, "email:    %s\n", profile.Email)
			fmt.Fprintf(env.Out, "skills:   %s\n", strings.Join(profile.Skills, ", "))
			fmt.Fprintf(env.Out, "location: %s\n", profile.Location)
			fmt.Fprintf(env.Out, "bio:      %s\n", profile.Bio)

			if !apply {
				return nil
			}
			resumeURL := filex.DataURL(filex.DetectMime(args[0], data), data)
			patch := account.Patch{
				Name:      &profile.Name,
				Skills:    &profile.Skills,
				Location:  &profile.Location,
				Bio:       &profile.Bio,
				ResumeURL: &resumeURL,
			}
			if _, err := env.Store.UpdateAccount(cmd.Context(), patch); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(env.Out, "Profile updated from resume.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "merge the extracted fields into your profile")
	return cmd
}
