package render

import (
	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/landing"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/model"
)

type LandingPageData struct {
	CSRFToken string
	User      *model.UserSummary
	Toasts    []notify.Notification
	Billing   landing.BillingPeriod
	MenuOpen  bool
	HeroIndex int
	AuthForm  *authform.State
}

type authModalView struct {
	ID         string
	Mode       string
	IsSignUp   bool
	Submitting bool
	Values     map[string]string
	Errors     map[string]string
}

func newAuthModalView(state *authform.State) *authModalView {
	if state == nil {
		return nil
	}
	view := &authModalView{
		ID:         state.ID,
		Mode:       state.Mode.String(),
		IsSignUp:   state.Mode == authform.ModeSignUp,
		Submitting: state.Submitting,
		Values:     make(map[string]string, len(state.Values)),
		Errors:     make(map[string]string, len(state.Errors)),
	}
	for field, val := range state.Values {
		view.Values[string(field)] = val
	}
	for field, msg := range state.Errors {
		view.Errors[string(field)] = msg
	}
	return view
}
