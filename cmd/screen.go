package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/clipboard"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/dragdrop"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/jobdesc"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/notify"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/screening"
)

const (
	PromptSendEmail   = "Send email"
	PromptCopyEmail   = "Copy email"
	PromptScreenAgain = "Screen again"
	PromptRetry       = "Retry"
	PromptExit        = "Exit"
)

var (
	errExit        = errors.New("exit requested")
	errScreenAgain = errors.New("screen again requested")
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume]...",
	Short: "Screen a resume (PDF or DOCX) against a job description",
	Long: `Screen a resume against a job description.

Resumes given as arguments are treated as a single drop: only the first one is used.
With --watch the command waits for a resume to be dropped into a directory instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("job-description", "t", "", "job description text")
	screenCmd.Flags().StringP("job-description-file", "f", "", "file with the job description. Takes precedence over --job-description")
	screenCmd.Flags().StringP("watch", "w", "", "wait for a resume to be dropped into this directory")
	screenCmd.Flags().BoolP("no-interactive", "y", false, "do not prompt for missing input or follow-up actions")
	screenCmd.Flags().String("endpoint", "", "screening service endpoint")

	viper.BindPFlag("job-description-file", screenCmd.Flags().Lookup("job-description-file"))
	viper.BindPFlag("service.endpoint", screenCmd.Flags().Lookup("endpoint"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting with config",
		zap.String("endpoint", config.Service.Endpoint),
		zap.Duration("timeout", config.Service.Timeout),
		zap.String("job_description_file", config.JobDescriptionFile),
	)

	interactive := cmd.Flag("no-interactive").Value.String() == "false"
	sink := notify.NewLogSink(logger)
	resumes := intake.New(sink, logger)
	controller := dragdrop.New(resumes, logger)

	if err := acquireResume(ctx, cmd, controller, config, args, logger); err != nil {
		logger.Fatal("getting a resume", zap.Error(err))
	}

	if interactive {
		for resumes.Current() == nil {
			if err := promptResume(controller, resumes); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}
	}

	jd, err := jobdesc.Load(jobdesc.Source{
		Value: cmd.Flag("job-description").Value.String(),
		File:  config.JobDescriptionFile,
	})
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	if interactive && strings.TrimSpace(jd) == "" {
		jd, err = (&promptui.Prompt{Label: "Job description"}).Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	client := screening.NewClient(logger, config.Service.Endpoint)
	if config.Service.Timeout > 0 {
		client.HTTPClient.Timeout = config.Service.Timeout
	}
	if config.Service.UserAgent != "" {
		client.UserAgent = config.Service.UserAgent
	}

	session := screening.NewSession(client, sink, logger)
	copier := clipboard.New(nil, sink, logger)
	input := screening.Input{Attachment: resumes.Current(), JobDescription: jd}

	for {
		err := session.Submit(ctx, input)
		switch {
		case errors.Is(err, screening.ErrMissingInput):
			logger.Fatal("nothing to screen",
				zap.Error(err),
				zap.String("hint", "pass a PDF or DOCX resume and --job-description or --job-description-file"),
			)
		case err != nil:
			if !interactive {
				logger.Fatal("exiting", zap.Error(err))
			}
			if err := afterFailure(); err != nil {
				return
			}
			continue
		}

		result := session.State().Result
		report(logger, result)

		if !interactive {
			return
		}

		err = afterSuccess(logger, copier, result)
		switch {
		case errors.Is(err, errExit):
			return
		case errors.Is(err, errScreenAgain):
			if err := promptResume(controller, resumes); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			if jd, err = promptJobDescription(jd); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			input = screening.Input{Attachment: resumes.Current(), JobDescription: jd}
		case err != nil:
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// acquireResume feeds the resume into the drop zone, either from arguments
// or from a watched directory.
func acquireResume(ctx context.Context, cmd *cobra.Command, controller *dragdrop.Controller, config *Config, args []string, logger *zap.Logger) error {
	if dir := strings.TrimSpace(cmd.Flag("watch").Value.String()); dir != "" {
		_, err := dragdrop.NewWatcher(dir, config.Watch.Settle, controller, logger).Wait(ctx)
		return err
	}

	if len(args) == 0 {
		return nil
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	first, err := intake.FromPath(args[0])
	if err != nil {
		return err
	}

	files := []intake.RawFile{first}
	for _, path := range args[1:] {
		raw, err := intake.FromPath(path)
		if err != nil {
			logger.Debug("skipping unreadable extra file", zap.String("path", path), zap.Error(err))
			continue
		}
		files = append(files, raw)
	}

	// Rejections are already reported to the user; an interactive run asks again.
	controller.Handle(dragdrop.Event{Type: dragdrop.Drop, Files: files})
	return nil
}

func promptResume(controller *dragdrop.Controller, resumes *intake.Intake) error {
	label := "Resume path (PDF or DOCX)"
	if current := resumes.Current(); current != nil {
		label = fmt.Sprintf("Resume path (empty keeps %s)", current.Name())
	}

	path, err := (&promptui.Prompt{Label: label}).Run()
	if err != nil {
		return err
	}

	if err := dropAnswer(controller, resumes, path); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return nil
}

// dropAnswer drops the file named by a prompt answer. A blank answer keeps the
// held resume.
func dropAnswer(controller *dragdrop.Controller, resumes *intake.Intake, answer string) error {
	path := strings.TrimSpace(answer)
	if path == "" {
		if resumes.Current() == nil {
			return errors.New("no resume selected")
		}
		return nil
	}

	raw, err := intake.FromPath(path)
	if err != nil {
		return err
	}

	controller.Handle(dragdrop.Event{Type: dragdrop.Drop, Files: []intake.RawFile{raw}})
	return nil
}

func promptJobDescription(current string) (string, error) {
	answer, err := (&promptui.Prompt{Label: "Job description (empty keeps the current one)"}).Run()
	if err != nil {
		return "", err
	}

	return nextJobDescription(current, answer), nil
}

func nextJobDescription(current, answer string) string {
	if strings.TrimSpace(answer) == "" {
		return current
	}
	return answer
}

func report(logger *zap.Logger, result *screening.Result) {
	presentation := result.Presentation()

	logger.Info("screening result",
		zap.String("candidate_email", result.CandidateEmail),
		zap.String("experience_level", result.ExperienceLevel),
		zap.Int("skill_match", result.SkillMatchPercent),
		zap.String("decision", presentation.Label),
		zap.Stringer("severity", presentation.Severity),
	)
}

func afterFailure() error {
	prompt := promptui.Select{
		Label: "Screening failed",
		Items: []string{PromptRetry, PromptExit},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}
	if action == PromptExit {
		return errExit
	}
	return nil
}

// afterSuccess runs follow-up actions until the user screens again or exits.
// Choosing to screen again returns errScreenAgain.
func afterSuccess(logger *zap.Logger, copier *clipboard.Copier, result *screening.Result) error {
	prompt := promptui.Select{
		Label: fmt.Sprintf("Decision: %s", result.Presentation().Label),
		Items: []string{PromptSendEmail, PromptCopyEmail, PromptScreenAgain, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(action, logger, copier, result); err != nil {
			return err
		}
	}
}

func handleAction(action string, logger *zap.Logger, copier *clipboard.Copier, result *screening.Result) error {
	switch action {
	case PromptSendEmail:
		uri, err := result.MailtoURI()
		if err != nil {
			logger.Warn("cannot compose an email for this decision", zap.Error(err))
			return nil
		}
		fmt.Println(uri)
		return nil
	case PromptCopyEmail:
		// The sink already told the user about a failed copy.
		_ = copier.Copy(result.CandidateEmail)
		return nil
	case PromptScreenAgain:
		return errScreenAgain
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
