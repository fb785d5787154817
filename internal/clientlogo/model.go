package clientlogo

// Logo represents an item of the client_logos collection.
type Logo struct {
	ID       int    `json:"id"`
	Name     string `json:"client_name"`
	Category string `json:"Category"`
	Logo     string `json:"client_logo"`
	Status   string `json:"status"`
	Sort     int    `json:"sort"`
}

// Industry is a client category with the number of clients in it.
type Industry struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
