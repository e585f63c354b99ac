// internal/pkg/i18n/messages.go
package i18n

import "github.com/techvista/storefront/internal/domain/session"

// Message is a user-facing text in both interface languages
type Message struct {
	FR string
	EN string
}

// In returns the text for the given language, defaulting to French
func (m Message) In(lang session.Language) string {
	if lang == session.LanguageEnglish {
		return m.EN
	}
	return m.FR
}

// Authentication messages
var (
	LoginAdminSuccess = Message{
		FR: "Connexion réussie en tant qu'administrateur",
		EN: "Successfully logged in as administrator",
	}
	LoginSuccess = Message{
		FR: "Connexion réussie",
		EN: "Successfully logged in",
	}
	InvalidCredentials = Message{
		FR: "Identifiants invalides",
		EN: "Invalid credentials",
	}
	RegisterSuccess = Message{
		FR: "Inscription réussie",
		EN: "Registration successful",
	}
	LogoutSuccess = Message{
		FR: "Déconnexion réussie",
		EN: "Successfully logged out",
	}
	AuthRequired = Message{
		FR: "Vous devez être connecté pour passer une commande",
		EN: "You must be logged in to place an order",
	}
)

// Preference messages. The language confirmation is phrased in the language
// just selected, matching observed behavior.
var (
	LanguageChangedFR = "Langue changée en français"
	LanguageChangedEN = "Language changed to English"

	ThemeLightEnabled = Message{FR: "Thème clair activé", EN: "Light theme enabled"}
	ThemeDarkEnabled  = Message{FR: "Thème sombre activé", EN: "Dark theme enabled"}
	ThemeAutoEnabled  = Message{FR: "Thème automatique activé", EN: "Auto theme enabled"}
)

// Catalog messages. ProductAdded carries a %s for the product name.
var (
	ProductAdded = Message{
		FR: "Produit %s ajouté avec succès",
		EN: "Product %s added successfully",
	}
	ProductUpdated = Message{
		FR: "Produit mis à jour avec succès",
		EN: "Product updated successfully",
	}
	ProductDeleted = Message{
		FR: "Produit supprimé avec succès",
		EN: "Product deleted successfully",
	}
	ProductNotFound = Message{
		FR: "Produit introuvable",
		EN: "Product not found",
	}
)

// Cart messages. CartStockWarning carries the requested quantity and the
// available stock.
var (
	CartItemAdded = Message{
		FR: "Produit ajouté au panier",
		EN: "Item added to cart",
	}
	CartItemUpdated = Message{
		FR: "Panier mis à jour",
		EN: "Cart updated",
	}
	CartItemRemoved = Message{
		FR: "Produit retiré du panier",
		EN: "Item removed from cart",
	}
	CartCleared = Message{
		FR: "Panier vidé",
		EN: "Cart cleared",
	}
	CartStockWarning = Message{
		FR: "Quantité demandée %d supérieure au stock disponible %d",
		EN: "Requested quantity %d exceeds available stock %d",
	}
)

// Order and checkout messages. OrderStatusUpdated carries a %s for the status.
var (
	OrderCreated = Message{
		FR: "Commande créée avec succès",
		EN: "Order created successfully",
	}
	OrderStatusUpdated = Message{
		FR: "Statut de la commande mis à jour: %s",
		EN: "Order status updated: %s",
	}
	OrderNotFound = Message{
		FR: "Commande introuvable",
		EN: "Order not found",
	}
	CheckoutMissingFields = Message{
		FR: "Veuillez remplir tous les champs obligatoires",
		EN: "Please fill in all required fields",
	}
	CheckoutMissingPayment = Message{
		FR: "Veuillez remplir tous les champs de paiement",
		EN: "Please fill in all payment fields",
	}
	CheckoutSuccess = Message{
		FR: "Votre commande a été traitée avec succès!",
		EN: "Your order has been processed successfully!",
	}
	CheckoutPaymentFailed = Message{
		FR: "Une erreur s'est produite lors du traitement de votre paiement",
		EN: "An error occurred while processing your payment",
	}
)
