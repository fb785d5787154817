package seo

// Location is landing copy targeted at one city.
type Location struct {
	Title       string
	H1          string
	Description string
	Keywords    []string
}

// LocationContent returns city-targeted copy. region defaults to city where
// the copy names an area.
func LocationContent(city, region string) Location {
	title := "Event Management Company in " + city
	if region != "" {
		title += ", " + region
	}
	area := orDefault(region, city)
	return Location{
		Title:       title,
		H1:          "Leading Corporate Event Management Services in " + city,
		Description: "White Massif - Your trusted corporate event management partner in " + city + ". Specializing in corporate events, product launches, team building activities, and conferences. Serving " + area + " with 175+ successful events for Fortune 500 companies.",
		Keywords: []string{
			"event management company in " + city,
			"corporate event planners " + city,
			"event organizers in " + city,
			city + " event management services",
			"best event company in " + area,
			"corporate events " + city,
			"team building activities " + city,
			"product launch events " + city,
		},
	}
}

// CommonFAQs answers the questions prospects ask most.
var CommonFAQs = []FAQ{
	{
		Question: "What types of corporate events does White Massif manage in India?",
		Answer:   "White Massif specializes in managing various corporate events across India including product launches, annual day celebrations, team building activities, conferences, seminars, award ceremonies, dealer meets, employee engagement programs, and virtual/hybrid events.",
	},
	{
		Question: "Which cities in India does White Massif provide event management services?",
		Answer:   "We provide comprehensive event management services across major Indian cities including Bangalore, Mumbai, Delhi NCR, Chennai, Hyderabad, Pune, Kolkata, Ahmedabad, and other tier-1 and tier-2 cities across India.",
	},
	{
		Question: "How much does corporate event management cost in Bangalore?",
		Answer:   "Event management costs vary based on the scale, type, and requirements of your event. We offer customized packages starting from ₹50,000 for small corporate events to premium solutions for large-scale conferences and product launches. Contact us for a detailed quote.",
	},
	{
		Question: "What makes White Massif the best event management company in Karnataka?",
		Answer:   "With over 175+ successful events, a decade of experience, and partnerships with Fortune 500 companies, White Massif brings creativity, reliability, and seamless execution to every event. Our team of 20+ professionals ensures end-to-end event management with attention to detail.",
	},
	{
		Question: "Does White Massif handle virtual and hybrid events?",
		Answer:   "Yes, we specialize in virtual and hybrid event management with cutting-edge technology, professional streaming services, and engaging digital experiences that connect audiences across India and globally.",
	},
}
