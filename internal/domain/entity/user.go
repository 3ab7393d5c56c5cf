package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type SellerInfo struct {
	Sports         []string `json:"sports" firestore:"sports"`
	Expertise      []string `json:"expertise" firestore:"expertise"`
	Experience     string   `json:"experience" firestore:"experience"`
	Certifications []string `json:"certifications" firestore:"certifications"`
}

type PaymentInfo struct {
	CustomerID           string `json:"customer_id,omitempty" firestore:"customerId,omitempty"`
	ConnectID            string `json:"connect_id,omitempty" firestore:"connectId,omitempty"`
	DefaultPaymentMethod string `json:"default_payment_method,omitempty" firestore:"defaultPaymentMethod,omitempty"`
}

type User struct {
	ID           string       `json:"id" firestore:"id"`
	FirstName    string       `json:"first_name" firestore:"firstName"`
	LastName     string       `json:"last_name" firestore:"lastName"`
	Email        string       `json:"email" firestore:"email"`
	Phone        string       `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role         string       `json:"role" firestore:"role"`
	ProfileImage string       `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	Bio          string       `json:"bio,omitempty" firestore:"bio,omitempty"`
	IsVerified   bool         `json:"is_verified" firestore:"isVerified"`
	SellerInfo   *SellerInfo  `json:"seller_info,omitempty" firestore:"sellerInfo,omitempty"`
	PaymentInfo  *PaymentInfo `json:"payment_info,omitempty" firestore:"paymentInfo,omitempty"`
	LastLogin    *time.Time   `json:"last_login,omitempty" firestore:"lastLogin,omitempty"`
	CreatedAt    time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time    `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
