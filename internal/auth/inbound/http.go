package inbound

import (
	"context"
	"net/http"

	"github.com/juniorhq/junior/internal/auth/usecase"
	"github.com/juniorhq/junior/internal/pkg/router"
	"github.com/juniorhq/junior/internal/pkg/view"
)

type uc interface {
	Home(ctx context.Context) (*usecase.HomeOutput, error)

	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	PendingEmail(ctx context.Context) (string, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error)
	ResendOtp(ctx context.Context, in usecase.ResendOtpInput) (*usecase.ResendOtpOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) (*usecase.DashboardOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, views view.Renderer) {
	end := &HTTPEndpoint{uc: uc, views: views}

	r.GETRaw("/", http.HandlerFunc(end.HomePage))

	r.GETRaw("/register", http.HandlerFunc(end.RegisterPage))
	r.POSTRaw("/register", http.HandlerFunc(end.RegisterSubmit))
	r.GETRaw("/verify-otp", http.HandlerFunc(end.VerifyOtpPage))
	r.POSTRaw("/verify-otp", http.HandlerFunc(end.VerifyOtpSubmit))
	r.GET("/resend-otp", end.ResendOtp)

	r.GETRaw("/login", http.HandlerFunc(end.LoginPage))
	r.POSTRaw("/login", http.HandlerFunc(end.LoginSubmit))
	r.GETRaw("/logout", http.HandlerFunc(end.Logout))

	r.GETRaw("/dashboard", http.HandlerFunc(end.DashboardPage))
}
