package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobdesk/internal/domain/application"
)

func newApplyCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to an active posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := env.Store.Apply(cmd.Context(), args[0])
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Applied to %q (application %s).\n", app.JobTitle, app.ID)
			return nil
		},
	}
}

func newApplicationsCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Track and manage applications",
	}
	cmd.AddCommand(newApplicationsListCommand(env))
	cmd.AddCommand(newApplicationsStatusCommand(env))
	cmd.AddCommand(newApplicationsInterviewCommand(env))
	return cmd
}

func newApplicationsListCommand(env *Env) *cobra.Command {
	var jobID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your applications (candidates) or applicants to a posting (--job)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var apps []application.Application
			if jobID != "" {
				apps = env.Store.ApplicationsForJob(jobID)
			} else {
				sess := env.Store.Session()
				if sess == nil {
					return fmt.Errorf("not signed in")
				}
				apps = env.Store.ApplicationsForCandidate(sess.ID)
			}
			w := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tJOB\tCANDIDATE\tSTATUS\tAPPLIED")
			for _, a := range apps {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.JobTitle, a.CandidateName, a.Status.Human(), a.AppliedDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&jobID, "job", "", "list applicants to this posting instead")
	return cmd
}

func newApplicationsStatusCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "status <application-id> <status>",
		Short: "Move an application through the pipeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := application.ParseStatus(args[1])
			if !ok {
				return fmt.Errorf("invalid status %q: must be applied, under_review, shortlisted, interview_scheduled, rejected, or hired", args[1])
			}
			updated, err := env.Store.SetApplicationStatus(cmd.Context(), args[0], status)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Application %s is now %s.\n", updated.ID, updated.Status.Human())
			return nil
		},
	}
}

func newApplicationsInterviewCommand(env *Env) *cobra.Command {
	var details application.Interview
	var mode string
	cmd := &cobra.Command{
		Use:   "interview <application-id>",
		Short: "Schedule (or reschedule) an interview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, ok := application.ParseMode(mode)
			if !ok {
				return fmt.Errorf("invalid mode %q: must be online or offline", mode)
			}
			details.Mode = parsed
			updated, err := env.Store.ScheduleInterview(cmd.Context(), args[0], details)
			if err != nil {
				return renderError(err)
			}
			iv := updated.Interview
			fmt.Fprintf(env.Out, "Interview %q scheduled on %s at %s (%s).\n", iv.Name, iv.Date, iv.Time, iv.Mode)
			return nil
		},
	}
	cmd.Flags().StringVar(&details.Name, "round", "Round 1", "interview round name")
	cmd.Flags().StringVar(&details.Date, "date", "", "date, e.g. 2025-06-01")
	cmd.Flags().StringVar(&details.Time, "time", "", "time, e.g. 10:00")
	cmd.Flags().StringVar(&mode, "mode", "online", "online or offline")
	cmd.Flags().StringVar(&details.LocationLink, "where", "", "location or meeting link")
	cmd.Flags().StringVar(&details.Notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newNotificationsCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show notifications addressed to you, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := env.Store.Session()
			if sess == nil {
				return fmt.Errorf("not signed in")
			}
			notifs := env.Store.NotificationsFor(sess.ID)
			if len(notifs) == 0 {
				fmt.Fprintln(env.Out, "No notifications.")
				return nil
			}
			for _, n := range notifs {
				fmt.Fprintf(env.Out, "[%s] %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
			}
			return nil
		},
	}
}
