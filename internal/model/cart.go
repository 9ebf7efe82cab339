package model

// CartItem is an owned snapshot of a Product taken at the moment it was
// added to the cart. Later catalog edits do not reach items already in
// the cart.
type CartItem struct {
	Product
}
