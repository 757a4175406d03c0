package handler

import (
	"context"
	"encoding/json"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// stubSiteAPI lets each test wire only the operations it exercises.
type stubSiteAPI struct {
	loginFn             func(ctx context.Context, email, password string) (ports.LoginResult, error)
	logoutFn            func(ctx context.Context) error
	isLoggedIn          bool
	getServicesFn       func(ctx context.Context) ([]domain.Service, error)
	getProjectsFn       func(ctx context.Context) ([]domain.Project, error)
	getPostsFn          func(ctx context.Context) ([]domain.Post, error)
	getPostFn           func(ctx context.Context, id string) (*domain.Post, error)
	getJobsFn           func(ctx context.Context) ([]domain.Job, error)
	submitApplicationFn func(ctx context.Context, app domain.Application) (ports.Receipt, error)
	sendMessageFn       func(ctx context.Context, msg domain.ContactMessage) (ports.Receipt, error)
	listApplicationsFn  func(ctx context.Context) (json.RawMessage, error)
	listMessagesFn      func(ctx context.Context) (json.RawMessage, error)
	createJobFn         func(ctx context.Context, job domain.Job) (ports.Receipt, error)
	updatePageFn        func(ctx context.Context, name string, content ports.PageRecord) (ports.Receipt, error)
}

func (s *stubSiteAPI) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSiteAPI) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func (s *stubSiteAPI) IsLoggedIn(context.Context) bool {
	return s.isLoggedIn
}

func (s *stubSiteAPI) GetServices(ctx context.Context) ([]domain.Service, error) {
	return s.getServicesFn(ctx)
}

func (s *stubSiteAPI) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return s.getProjectsFn(ctx)
}

func (s *stubSiteAPI) GetPosts(ctx context.Context) ([]domain.Post, error) {
	return s.getPostsFn(ctx)
}

func (s *stubSiteAPI) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.getPostFn(ctx, id)
}

func (s *stubSiteAPI) GetJobs(ctx context.Context) ([]domain.Job, error) {
	return s.getJobsFn(ctx)
}

func (s *stubSiteAPI) SubmitApplication(ctx context.Context, app domain.Application) (ports.Receipt, error) {
	return s.submitApplicationFn(ctx, app)
}

func (s *stubSiteAPI) SendMessage(ctx context.Context, msg domain.ContactMessage) (ports.Receipt, error) {
	return s.sendMessageFn(ctx, msg)
}

func (s *stubSiteAPI) ListApplications(ctx context.Context) (json.RawMessage, error) {
	return s.listApplicationsFn(ctx)
}

func (s *stubSiteAPI) ListMessages(ctx context.Context) (json.RawMessage, error) {
	return s.listMessagesFn(ctx)
}

func (s *stubSiteAPI) CreateJob(ctx context.Context, job domain.Job) (ports.Receipt, error) {
	return s.createJobFn(ctx, job)
}

func (s *stubSiteAPI) UpdatePage(ctx context.Context, name string, content ports.PageRecord) (ports.Receipt, error) {
	return s.updatePageFn(ctx, name, content)
}

// recordingJournal captures journal writes synchronously.
type recordingJournal struct {
	records []domain.SubmissionRecord
	err     error
}

func (j *recordingJournal) Record(_ context.Context, rec domain.SubmissionRecord) error {
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, rec)
	return nil
}
