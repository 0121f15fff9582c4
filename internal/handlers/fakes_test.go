package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/models"
	"github.com/wonderbd/tourism-backend/internal/payments"
	"github.com/wonderbd/tourism-backend/internal/validators"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// newTestContext builds an Echo context with the app validator wired in,
// mirroring how the server binds and validates requests.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) SearchUsers(_ context.Context, search, role string) ([]models.User, error) {
	results := []models.User{}
	for _, u := range f.users {
		if search != "" {
			lower := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(u.FullName), lower) &&
				!strings.Contains(strings.ToLower(u.Email), lower) {
				continue
			}
		}
		if role != "" && string(u.UserRole) != role {
			continue
		}
		results = append(results, u)
	}
	return results, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, fullName, photoURL string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].FullName = fullName
			f.users[i].PhotoURL = photoURL
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateRoleByEmail(_ context.Context, email string, role models.Role) error {
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].UserRole = role
		}
	}
	return nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeStoryRepo struct {
	stories []models.Story
}

func (f *fakeStoryRepo) CreateStory(_ context.Context, story *models.Story) error {
	story.ID = primitive.NewObjectID()
	f.stories = append(f.stories, *story)
	return nil
}

func (f *fakeStoryRepo) GetAllStories(_ context.Context) ([]models.Story, error) {
	return append([]models.Story{}, f.stories...), nil
}

func (f *fakeStoryRepo) GetStoriesByEmail(_ context.Context, email string) ([]models.Story, error) {
	results := []models.Story{}
	for _, s := range f.stories {
		if s.Email == email {
			results = append(results, s)
		}
	}
	return results, nil
}

func (f *fakeStoryRepo) SampleStories(_ context.Context, role models.Role, size int) ([]models.Story, error) {
	results := []models.Story{}
	for _, s := range f.stories {
		if s.UserRole == role {
			results = append(results, s)
		}
		if len(results) == size {
			break
		}
	}
	return results, nil
}

func (f *fakeStoryRepo) RemoveImage(_ context.Context, id primitive.ObjectID, image string) (*models.Story, error) {
	for i := range f.stories {
		if f.stories[i].ID == id {
			images := []string{}
			for _, img := range f.stories[i].Images {
				if img != image {
					images = append(images, img)
				}
			}
			f.stories[i].Images = images
			story := f.stories[i]
			return &story, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStoryRepo) UpdateContent(_ context.Context, id primitive.ObjectID, title, text string) (*models.Story, error) {
	for i := range f.stories {
		if f.stories[i].ID == id {
			f.stories[i].Title = title
			f.stories[i].Text = text
			story := f.stories[i]
			return &story, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStoryRepo) DeleteStory(_ context.Context, id primitive.ObjectID, email string) (int64, error) {
	for i := range f.stories {
		if f.stories[i].ID == id && f.stories[i].Email == email {
			f.stories = append(f.stories[:i], f.stories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStoryRepo) CountStories(_ context.Context) (int64, error) {
	return int64(len(f.stories)), nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	booking.ID = primitive.NewObjectID()
	booking.Status = models.BookingStatusPending
	f.bookings = append(f.bookings, *booking)
	return booking.ID, nil
}

func (f *fakeBookingRepo) GetBookingsByEmail(_ context.Context, email string) ([]models.Booking, error) {
	results := []models.Booking{}
	for _, b := range f.bookings {
		if b.TouristEmail == email {
			results = append(results, b)
		}
	}
	return results, nil
}

func (f *fakeBookingRepo) GetAllBookings(_ context.Context) ([]models.Booking, error) {
	return append([]models.Booking{}, f.bookings...), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.UpdateOutcome, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			modified := f.bookings[i].Status != status
			f.bookings[i].Status = status
			return &models.UpdateOutcome{Matched: true, Modified: modified}, nil
		}
	}
	return &models.UpdateOutcome{}, nil
}

func (f *fakeBookingRepo) TotalRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, b := range f.bookings {
		total += b.Price
	}
	return total, nil
}

type fakePaymentRepo struct {
	payments []models.Payment
}

func (f *fakePaymentRepo) CreatePayment(_ context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.Status = models.PaymentStatusPending
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, paymentIntentID, status string) (*models.UpdateOutcome, error) {
	for i := range f.payments {
		if f.payments[i].PaymentIntentID == paymentIntentID {
			modified := f.payments[i].Status != status
			f.payments[i].Status = status
			return &models.UpdateOutcome{Matched: true, Modified: modified}, nil
		}
	}
	return &models.UpdateOutcome{}, nil
}

type fakeGuideRepo struct {
	guides []models.TourGuide
}

func (f *fakeGuideRepo) CreateTourGuide(_ context.Context, guide *models.TourGuide) error {
	guide.ID = primitive.NewObjectID()
	f.guides = append(f.guides, *guide)
	return nil
}

func (f *fakeGuideRepo) GetAllTourGuides(_ context.Context) ([]models.TourGuide, error) {
	return append([]models.TourGuide{}, f.guides...), nil
}

func (f *fakeGuideRepo) GetTourGuideByID(_ context.Context, id primitive.ObjectID) (*models.TourGuide, error) {
	for i := range f.guides {
		if f.guides[i].ID == id {
			guide := f.guides[i]
			return &guide, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeGuideRepo) SampleTourGuides(_ context.Context, size int) ([]models.TourGuide, error) {
	if len(f.guides) <= size {
		return append([]models.TourGuide{}, f.guides...), nil
	}
	return append([]models.TourGuide{}, f.guides[:size]...), nil
}

func (f *fakeGuideRepo) CountTourGuides(_ context.Context) (int64, error) {
	return int64(len(f.guides)), nil
}

type fakeApplicationRepo struct {
	applications []models.GuideApplication
}

func (f *fakeApplicationRepo) CreateApplication(_ context.Context, application *models.GuideApplication) error {
	application.ID = primitive.NewObjectID()
	application.Status = models.ApplicationStatusPending
	f.applications = append(f.applications, *application)
	return nil
}

func (f *fakeApplicationRepo) GetAllApplications(_ context.Context) ([]models.GuideApplication, error) {
	return append([]models.GuideApplication{}, f.applications...), nil
}

func (f *fakeApplicationRepo) GetApplicationByID(_ context.Context, id primitive.ObjectID) (*models.GuideApplication, error) {
	for i := range f.applications {
		if f.applications[i].ID == id {
			application := f.applications[i]
			return &application, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApplicationRepo) DeleteApplication(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.applications {
		if f.applications[i].ID == id {
			f.applications = append(f.applications[:i], f.applications[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakePackageRepo struct {
	packages []models.Package
}

func (f *fakePackageRepo) GetAllPackages(_ context.Context) ([]models.Package, error) {
	return append([]models.Package{}, f.packages...), nil
}

func (f *fakePackageRepo) GetPackageByID(_ context.Context, id primitive.ObjectID) (*models.Package, error) {
	for i := range f.packages {
		if f.packages[i].ID == id {
			pkg := f.packages[i]
			return &pkg, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePackageRepo) CountPackages(_ context.Context) (int64, error) {
	return int64(len(f.packages)), nil
}

type fakePaymentProvider struct {
	intents []payments.Intent
	amounts []int64
	err     error
}

func (f *fakePaymentProvider) CreateIntent(amountCents int64, currency string) (*payments.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.amounts = append(f.amounts, amountCents)
	intent := payments.Intent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}
	f.intents = append(f.intents, intent)
	return &intent, nil
}
