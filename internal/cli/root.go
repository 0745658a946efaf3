// Package cli is the command front end over the board store. Every command
// maps onto one store operation; navigation and rendering concerns stay out
// of the store itself.
package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"jobdesk/internal/board"
	"jobdesk/internal/common"
	"jobdesk/internal/config"
	"jobdesk/internal/resume"
)

// Env carries the collaborators commands run against.
type Env struct {
	Store  *board.Store
	Config *config.Config
	Out    io.Writer
}

// ResumeClient builds the extraction client from config.
func (e *Env) ResumeClient() *resume.Client {
	return resume.New(e.Config.ResumeAPIURL, e.Config.ResumeAPIKey, &http.Client{
		Timeout: e.Config.ResumeTimeout,
	})
}

// NewRootCommand creates the jobdesk root command.
func NewRootCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jobdesk",
		Short:         "jobdesk - a local-first job board",
		Long:          "Browse and apply to postings, manage hiring pipelines, and moderate listings, all against local storage.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSignupCommand(env))
	cmd.AddCommand(newLoginCommand(env))
	cmd.AddCommand(newLogoutCommand(env))
	cmd.AddCommand(newWhoamiCommand(env))
	cmd.AddCommand(newJobsCommand(env))
	cmd.AddCommand(newApplyCommand(env))
	cmd.AddCommand(newApplicationsCommand(env))
	cmd.AddCommand(newNotificationsCommand(env))
	cmd.AddCommand(newProfileCommand(env))

	return cmd
}

// renderError rewrites tagged store errors into short user-facing messages.
func renderError(err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Code {
	case common.CodeUnauthorized:
		return fmt.Errorf("not allowed: %s", appErr.Message)
	case common.CodeForbidden:
		return fmt.Errorf("denied: %s", appErr.Message)
	case common.CodeNotFound:
		return fmt.Errorf("not found: %s", appErr.Message)
	case common.CodeConflict:
		return fmt.Errorf("conflict: %s", appErr.Message)
	case common.CodeValidation:
		if len(appErr.Fields) > 0 {
			msg := appErr.Message
			for field, reason := range appErr.Fields {
				msg += fmt.Sprintf("\n  %s: %s", field, reason)
			}
			return errors.New(msg)
		}
		return errors.New(appErr.Message)
	default:
		return err
	}
}
