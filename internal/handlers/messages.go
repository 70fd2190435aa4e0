package handlers

const (
	MsgDemoTitle        = "Demo Coming Soon"
	MsgDemoComingSoon   = "Interactive demo will be available in the next version!"
	MsgGoogleComingSoon = "Google OAuth coming soon!"
	MsgGitHubComingSoon = "GitHub OAuth coming soon!"
	MsgUnsupportedOAuth = "This sign-in provider is not supported."
	MsgSessionExpired   = "Your session has expired. Please sign in again."
	MsgAuthFormExpired  = "Your sign-in form expired. Please try again."
	MsgSignedOut        = "You have been signed out."
	MsgAlreadySignedIn  = "You are already signed in."
	MsgSubmitInProgress = "Please wait, we are still signing you in."
)

var oauthComingSoon = map[string]string{
	"google": MsgGoogleComingSoon,
	"github": MsgGitHubComingSoon,
}
