package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobdesk/internal/domain/job"
)

func newJobsCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage job postings",
	}
	cmd.AddCommand(newJobsListCommand(env))
	cmd.AddCommand(newJobsShowCommand(env))
	cmd.AddCommand(newJobsPostCommand(env))
	cmd.AddCommand(newJobsEditCommand(env))
	cmd.AddCommand(newJobsCloseCommand(env))
	cmd.AddCommand(newJobsDeleteCommand(env))
	return cmd
}

func newJobsListCommand(env *Env) *cobra.Command {
	var all bool
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List postings (active only unless --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings := env.Store.Jobs()
			if mine {
				sess := env.Store.Session()
				if sess == nil {
					return fmt.Errorf("not signed in")
				}
				listings = env.Store.JobsByEmployer(sess.ID)
			}
			w := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY\tSTATUS")
			for _, j := range listings {
				if !all && !mine && j.Status != job.StatusActive {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					j.ID, j.Title, j.CompanyName, j.Location, j.Salary, j.Status.Human())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include pending, inactive, and rejected postings")
	cmd.Flags().BoolVar(&mine, "mine", false, "only postings owned by the signed-in employer")
	return cmd
}

func newJobsShowCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show one posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := env.Store.Job(args[0])
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "%s at %s\n", j.Title, j.CompanyName)
			fmt.Fprintf(env.Out, "  id:        %s\n", j.ID)
			fmt.Fprintf(env.Out, "  location:  %s\n", j.Location)
			fmt.Fprintf(env.Out, "  salary:    %s\n", j.Salary)
			fmt.Fprintf(env.Out, "  type:      %s\n", j.Type)
			fmt.Fprintf(env.Out, "  status:    %s\n", j.Status.Human())
			fmt.Fprintf(env.Out, "  skills:    %s\n", strings.Join(j.Skills, ", "))
			fmt.Fprintf(env.Out, "  posted:    %s\n", j.PostedAt.Format("2006-01-02"))
			if j.Description != "" {
				fmt.Fprintf(env.Out, "\n%s\n", j.Description)
			}
			if env.Store.HasApplied(j.ID) {
				fmt.Fprintln(env.Out, "\nYou have already applied to this job.")
			}
			return nil
		},
	}
}

func newJobsPostCommand(env *Env) *cobra.Command {
	var draft job.Draft
	var skills string
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skills != "" {
				draft.Skills = splitList(skills)
			}
			created, err := env.Store.CreateJob(cmd.Context(), draft)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Posted %q (id %s).\n", created.Title, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "job title")
	cmd.Flags().StringVar(&draft.Location, "location", "", `location (default "Remote")`)
	cmd.Flags().StringVar(&draft.Salary, "salary", "", `salary text (default "Competitive")`)
	cmd.Flags().StringVar(&draft.Description, "description", "", "free-text description")
	cmd.Flags().StringVar(&draft.Type, "type", "", `employment type (default "Full-time")`)
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newJobsEditCommand(env *Env) *cobra.Command {
	var title, location, salary, description, jobType, skills, status string
	cmd := &cobra.Command{
		Use:   "edit <job-id>",
		Short: "Update a posting you own (admins may update any)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch job.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("location") {
				patch.Location = &location
			}
			if cmd.Flags().Changed("salary") {
				patch.Salary = &salary
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("type") {
				patch.Type = &jobType
			}
			if cmd.Flags().Changed("skills") {
				list := splitList(skills)
				patch.Skills = &list
			}
			if cmd.Flags().Changed("status") {
				parsed, ok := job.ParseStatus(status)
				if !ok {
					return fmt.Errorf("invalid status %q: must be pending, active, inactive, rejected, or deleted", status)
				}
				patch.Status = &parsed
			}
			updated, err := env.Store.UpdateJob(cmd.Context(), args[0], patch)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Updated %q (status %s).\n", updated.Title, updated.Status.Human())
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringVar(&salary, "salary", "", "salary text")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&jobType, "type", "", "employment type")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	cmd.Flags().StringVar(&status, "status", "", "lifecycle status")
	return cmd
}

func newJobsCloseCommand(env *Env) *cobra.Command {
	var reopen bool
	cmd := &cobra.Command{
		Use:   "close <job-id>",
		Short: "Stop accepting applications (or reopen with --reopen)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := job.StatusInactive
			if reopen {
				status = job.StatusActive
			}
			updated, err := env.Store.UpdateJob(cmd.Context(), args[0], job.Patch{Status: &status})
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "%q is now %s.\n", updated.Title, updated.Status.Human())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reopen, "reopen", false, "set the posting back to active")
	return cmd
}

func newJobsDeleteCommand(env *Env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Soft-delete a posting (the record is retained)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			if err := env.Store.DeleteJob(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Deleted job %s.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
