package entity

import (
	"time"
)

const (
	SaleTypeFixed   = "Fixed"
	SaleTypeAuction = "Auction"
	SaleTypeBoth    = "Both"

	ContentStatusDraft     = "Draft"
	ContentStatusPublished = "Published"
	ContentStatusArchived  = "Archived"

	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"
)

// AuctionDetails is embedded on Content when the sale type allows bidding.
type AuctionDetails struct {
	StartingBid  float64    `json:"starting_bid" firestore:"startingBid"`
	MinIncrement float64    `json:"min_increment" firestore:"minIncrement"`
	ReservePrice float64    `json:"reserve_price,omitempty" firestore:"reservePrice,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty" firestore:"endTime,omitempty"`
}

type Content struct {
	ID                  string          `json:"id" firestore:"id"`
	SellerID            string          `json:"seller_id" firestore:"sellerId"`
	Title               string          `json:"title" firestore:"title"`
	Description         string          `json:"description" firestore:"description"`
	Sport               string          `json:"sport" firestore:"sport"`
	ContentType         string          `json:"content_type" firestore:"contentType"`
	FileURL             string          `json:"file_url" firestore:"fileUrl"`
	PreviewURL          string          `json:"preview_url,omitempty" firestore:"previewUrl,omitempty"`
	ThumbnailURL        string          `json:"thumbnail_url,omitempty" firestore:"thumbnailUrl,omitempty"`
	Duration            float64         `json:"duration,omitempty" firestore:"duration,omitempty"`
	FileSize            int64           `json:"file_size,omitempty" firestore:"fileSize,omitempty"`
	Tags                []string        `json:"tags,omitempty" firestore:"tags,omitempty"`
	Difficulty          string          `json:"difficulty" firestore:"difficulty"`
	SaleType            string          `json:"sale_type" firestore:"saleType"`
	Price               float64         `json:"price" firestore:"price"`
	AuctionDetails      *AuctionDetails `json:"auction_details,omitempty" firestore:"auctionDetails,omitempty"`
	AllowCustomRequests bool            `json:"allow_custom_requests" firestore:"allowCustomRequests"`
	Status              string          `json:"status" firestore:"status"`
	Visibility          string          `json:"visibility" firestore:"visibility"`
	AverageRating       float64         `json:"average_rating" firestore:"averageRating"`
	IsCustomContent     bool            `json:"is_custom_content" firestore:"isCustomContent"`
	CustomRequestID     string          `json:"custom_request_id,omitempty" firestore:"customRequestId,omitempty"`
	CreatedAt           time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt           time.Time       `json:"updated_at" firestore:"updatedAt"`
}

// Auctionable reports whether the listing accepts bids at all.
func (c *Content) Auctionable() bool {
	return c.SaleType == SaleTypeAuction || c.SaleType == SaleTypeBoth
}

// AuctionEnded reports whether the auction end time has passed. A listing
// without an end time runs until the seller closes it.
func (c *Content) AuctionEnded(now time.Time) bool {
	return c.AuctionDetails != nil && c.AuctionDetails.EndTime != nil && c.AuctionDetails.EndTime.Before(now)
}
