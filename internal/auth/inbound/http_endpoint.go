package inbound

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juniorhq/junior/internal/auth/usecase"
	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/router"
	"github.com/juniorhq/junior/internal/pkg/validator"
	"github.com/juniorhq/junior/internal/pkg/view"
)

// HTTPEndpoint exposes the rendered pages and JSON endpoints of the auth flow.
type HTTPEndpoint struct {
	uc    uc
	views view.Renderer
}

func (h *HTTPEndpoint) render(w http.ResponseWriter, code int, name string, data view.Data) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := h.views.Render(w, name, data); err != nil {
		slog.Error("failed to render view", "view", name, "error", err)
	}
}

func (h *HTTPEndpoint) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "page handler failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// HomePage renders the landing page with the one-time welcome message, if any.
func (h *HTTPEndpoint) HomePage(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Home(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "home.html", view.Data{
		"Authenticated": out.Authenticated,
		"FullName":      out.FullName,
		"Flash":         out.Flash,
	})
}

// registerViewData builds the complete key set register.html expects.
func registerViewData(name, email, banner string, errs map[string]string) view.Data {
	if errs == nil {
		errs = map[string]string{}
	}
	return view.Data{
		"Name":   name,
		"Email":  email,
		"Error":  banner,
		"Errors": errs,
	}
}

// RegisterPage renders the empty registration form.
func (h *HTTPEndpoint) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "register.html", registerViewData("", "", "", nil))
}

// RegisterSubmit stages a registration and shows the OTP verification form.
func (h *HTTPEndpoint) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")

	out, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if fields, ok := fieldErrors(err); ok {
			h.render(w, http.StatusBadRequest, "register.html", registerViewData(name, email, "", fields))
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "verify_otp.html", view.Data{
		"Email": out.Email,
	})
}

// VerifyOtpPage renders the OTP form, or sends the user back to registration
// when nothing is staged anymore.
func (h *HTTPEndpoint) VerifyOtpPage(w http.ResponseWriter, r *http.Request) {
	email, err := h.uc.PendingEmail(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if email == "" {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	h.render(w, http.StatusOK, "verify_otp.html", view.Data{
		"Email": email,
	})
}

// VerifyOtpSubmit checks the code and creates the account on match.
func (h *HTTPEndpoint) VerifyOtpSubmit(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.VerifyOtp(r.Context(), usecase.VerifyOtpInput{
		OTP: r.PostFormValue("otp"),
	})
	if err != nil {
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			h.serverError(w, r, err)
			return
		}

		switch gerr.Code() {
		case goerror.CodeSessionExpired:
			h.render(w, gerr.StatusCode(), "register.html", registerViewData("", "", gerr.Msg(), nil))
		case goerror.CodeInvalidInput, goerror.CodeConflict:
			email, pendErr := h.uc.PendingEmail(r.Context())
			if pendErr != nil {
				h.serverError(w, r, pendErr)
				return
			}
			h.render(w, gerr.StatusCode(), "verify_otp.html", view.Data{
				"Error": gerr.Msg(),
				"Email": email,
			})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.render(w, http.StatusCreated, "login.html", view.Data{
		"Message": "Account created successfully! Welcome, " + out.FullName,
		"Email":   out.Email,
	})
}

// ResendOtp restages a fresh code and acknowledges in JSON.
func (h *HTTPEndpoint) ResendOtp(r *router.Request) (any, error) {
	out, err := h.uc.ResendOtp(r.Context(), usecase.ResendOtpInput{
		Email: r.GetQuery("email"),
	})
	if err != nil {
		return nil, err
	}

	return ResendOtpResponse{Email: out.Email}, nil
}

// LoginPage renders the empty login form.
func (h *HTTPEndpoint) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html", view.Data{"Email": ""})
}

// LoginSubmit authenticates and redirects home on success.
func (h *HTTPEndpoint) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	_, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() == goerror.CodeInternal {
			h.serverError(w, r, err)
			return
		}

		h.render(w, gerr.StatusCode(), "login.html", view.Data{
			"Error": gerr.Msg(),
			"Email": r.PostFormValue("email"),
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the session and redirects home.
func (h *HTTPEndpoint) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Logout(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "failed to logout", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// DashboardPage renders the authenticated-only dashboard.
func (h *HTTPEndpoint) DashboardPage(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Dashboard(r.Context())
	if err != nil {
		var gerr *goerror.Error
		if errors.As(err, &gerr) && gerr.Code() == goerror.CodeUnauthorized {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "dashboard.html", view.Data{
		"FullName": out.FullName,
		"Email":    out.Email,
	})
}

// fieldErrors extracts the per-field validation map from an error chain.
func fieldErrors(err error) (map[string]string, bool) {
	var ve validator.V10ValidationError
	if errors.As(err, &ve) {
		return ve.Values(), true
	}

	var gerr *goerror.Error
	if errors.As(err, &gerr) && len(gerr.Fields()) > 0 {
		return gerr.Fields(), true
	}

	return nil, false
}
