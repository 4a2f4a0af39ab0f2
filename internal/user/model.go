package user

// User is the single account kept on the device.
type User struct {
	Account      string `json:"account"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Profile is the customer data copied into an order. It never carries
// credentials.
type Profile struct {
	Account string `json:"account"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u User) Profile() Profile {
	return Profile{Account: u.Account, Email: u.Email, Phone: u.Phone, Address: u.Address}
}

// HasShippingInfo reports whether phone and address are both set.
func (u User) HasShippingInfo() bool {
	return u.Phone != "" && u.Address != ""
}

type Rank string

const (
	RankGold   Rank = "Gold"
	RankBronze Rank = "Bronze"
)
