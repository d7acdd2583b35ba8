package mail

import "fmt"

const welcomeSubject = "Welcome to NotePlanning"

// WelcomeSubject returns the subject line for the account welcome mail.
func WelcomeSubject() string {
	return welcomeSubject
}

// WelcomeBody renders the welcome mail for a freshly provisioned account.
// The credential is the generated plaintext; it exists nowhere else once
// this mail is gone.
func WelcomeBody(name string, email string, credential string) string {
	return fmt.Sprintf(
		"<h2>Welcome, %s!</h2>"+
			"<p>Your account has been created after your purchase was confirmed.</p>"+
			"<p>Login: <strong>%s</strong><br>"+
			"Password: <strong>%s</strong></p>"+
			"<p>Please change your password after your first login.</p>",
		name, email, credential,
	)
}
