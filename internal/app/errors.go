package app

// Steps of a run, as named in error messages
const (
	StepLoadSettings   = "loading settings"
	StepConnectJira    = "connecting to jira"
	StepProjectKey     = "getting project key"
	StepReleaseIssues  = "getting release issues"
	StepConnectGitLab  = "connecting to gitlab"
	StepOpenRepository = "opening repository"
	StepCommits        = "getting commits"
)

// StepError names the step of a run that failed
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return "Error while " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
