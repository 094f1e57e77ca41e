package middlewares

import (
	"crypto/subtle"
	"strings"

	"rezerve.link/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth admin uçlarını tek paylaşımlı kimlik bilgisiyle korur.
// ADMIN_PASSWORD yapılandırılmamışsa uçlar kapalı kalır (500 döner).
// Parola değeri bcrypt hash'i ise hash karşılaştırması, değilse sabit
// zamanlı düz karşılaştırma yapılır.
func AdminAuth(cfg *configs.Config) fiber.Handler {
	authorizer := func(username, password string) bool {
		if subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) != 1 {
			return false
		}
		if strings.HasPrefix(cfg.AdminPassword, "$2") {
			return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassword), []byte(password)) == nil
		}
		return subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	}

	auth := basicauth.New(basicauth.Config{
		Authorizer: authorizer,
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Geçersiz kimlik bilgileri"})
		},
	})

	return func(c *fiber.Ctx) error {
		if cfg.AdminPassword == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Yönetici parolası yapılandırılmamış. Sistem yöneticisiyle iletişime geçin.",
			})
		}
		return auth(c)
	}
}
