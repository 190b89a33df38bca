package adminapi

import "time"

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     *string   `json:"firstName"`
	LastName      *string   `json:"lastName"`
	FullName      string    `json:"fullname"`
	RoleID        string    `json:"roleId"`
	Role          Role      `json:"user_role"`
	Status        *string   `json:"status"`
	EmailVerified bool      `json:"emailVerified"`
	IsBanned      bool      `json:"isBanned"`
	IsDeleted     bool      `json:"isDeleted"`
	Image         *string   `json:"image"`
	CustomerID    *string   `json:"customerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Site struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Subdomain        string    `json:"subdomain"`
	Email            string    `json:"email"`
	BucketKey        string    `json:"bucketKey"`
	HomePage         string    `json:"homePage"`
	IsPrivate        bool      `json:"isPrivate"`
	IsDomainVerified bool      `json:"isDomainVerified"`
	IsBanned         bool      `json:"isBanned"`
	CreatedBy        string    `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	BannedUsers   int `json:"bannedUsers"`
	TotalSites    int `json:"totalSites"`
	BannedSites   int `json:"bannedSites"`
	NewUsersMonth int `json:"newUsersThisMonth"`
}

type UserUpdate struct {
	Email     string  `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	RoleID    string  `json:"roleId,omitempty"`
	IsBanned  *bool   `json:"isBanned,omitempty"`
}

type UserInvite struct {
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}

type BanRequest struct {
	SiteID string `json:"id"`
	Banned bool   `json:"isBanned"`
}
