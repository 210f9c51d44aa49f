package routes

import (
	"errors"
	"log"

	"github.com/arzan03/PawPal/internal/access"
	"github.com/arzan03/PawPal/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

const liveness = "PawPal server is running....."

// Deps are the long-lived collaborators built once at startup. Images may
// be nil, in which case the upload route is not registered.
type Deps struct {
	Tokens     TokenService
	Users      UserStore
	Categories handlers.CategoryStore
	Pets       handlers.PetStore
	Donations  handlers.DonationStore
	Images     handlers.ImageUploader
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	handlers.TokenIssuer
	access.TokenVerifier
}

// UserStore also backs the admin gate.
type UserStore interface {
	handlers.UserStore
	access.RoleLookup
}

// ErrorHandler renders handler errors as {"error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

// Register mounts every route under /api/v1. Each route lists its gates
// explicitly: none, authenticate, authenticate+self, or authenticate+admin.
func Register(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(liveness)
	})

	authn := access.Authenticate(deps.Tokens)
	authed := access.Chain(authn)
	self := access.Chain(authn, access.RequireSelf("email"))
	admin := access.Chain(authn, access.RequireAdmin(deps.Users))

	auth := handlers.NewAuthHandler(deps.Tokens)
	users := handlers.NewUserHandler(deps.Users)
	categories := handlers.NewCategoryHandler(deps.Categories)
	pets := handlers.NewPetHandler(deps.Pets)
	donations := handlers.NewDonationHandler(deps.Donations)

	v1 := app.Group("/api/v1")

	// Tokens and users
	v1.Post("/jwt", auth.IssueToken)
	v1.Post("/users", users.Register)
	v1.Get("/users", admin, users.ListUsers)
	v1.Get("/users/admin/:email", self, users.CheckAdmin)
	v1.Patch("/toAdmin/:id", admin, users.PromoteToAdmin)

	// Pets
	v1.Get("/categorys", categories.List)
	v1.Get("/allPets", pets.List)
	v1.Get("/pet/:id", authed, pets.Get)
	v1.Post("/addPets", authed, pets.Create)
	v1.Delete("/delete/:id", authed, pets.Delete)
	v1.Patch("/status/:id", authed, pets.MarkAdopted)
	v1.Patch("/statusAdmin/:id", authed, pets.SetAdopted)
	v1.Patch("/update/:id", authed, pets.Update)
	v1.Get("/myAddedPets", authed, pets.ListMine)

	// Donation campaigns
	v1.Get("/allDonations", donations.List)
	v1.Get("/singleDonation/:id", authed, donations.Get)
	v1.Post("/createDonation", authed, donations.Create)
	v1.Patch("/donationStatus/:id", authed, donations.SetStatus)
	v1.Patch("/updateDonation/:id", authed, donations.Update)
	v1.Get("/myAddedCampaigns", authed, donations.ListMine)

	if deps.Images != nil {
		images := handlers.NewImageHandler(deps.Images)
		v1.Post("/images", authed, images.Upload)
	}
}
