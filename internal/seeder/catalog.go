package seeder

// itemTemplate is one hand-authored entry of the seed catalog.
type itemTemplate struct {
	Name        string
	Description string
	Price       float64
}

var categories = []string{
	"electronics", "furniture", "clothing", "books",
	"sports", "toys", "home", "vehicles", "others",
}

var conditions = []string{"New", "Like New", "Good", "Fair", "Poor"}

// catalog maps each category to its item templates. Every template becomes
// exactly one product per generation run.
var catalog = map[string][]itemTemplate{
	"electronics": {
		{"Samsung Galaxy S22", "Flagship smartphone with 5G capability", 2499},
		{"Sony Noise Cancelling Headphones", "Premium wireless headphones with industry-leading noise cancellation", 899},
		{"Dell XPS 13 Laptop", "Ultrabook with 11th Gen Intel Core processor", 4999},
		{"Apple iPad Pro", "12.9-inch Liquid Retina XDR display with M1 chip", 3899},
		{"Logitech MX Master 3 Mouse", "Advanced wireless mouse for productivity", 399},
	},
	"furniture": {
		{"IKEA MALM Bed Frame", "Queen size bed frame with storage", 899},
		{"Leather Recliner Sofa", "3-seater recliner sofa with cup holders", 2499},
		{"Wooden Dining Table Set", "6-seater dining table with chairs", 1299},
		{"Bookshelf with Glass Doors", "Tall bookshelf with adjustable shelves", 599},
		{"Office Desk with Drawers", "Spacious desk for home office setup", 799},
	},
	"clothing": {
		{"Adidas Ultraboost Shoes", "Running shoes with responsive cushioning", 599},
		{"Levi's 501 Jeans", "Original fit denim jeans", 299},
		{"Uniqlo AIRism T-shirt", "Breathable and moisture-wicking t-shirt", 59},
		{"North Face Waterproof Jacket", "Durable jacket for outdoor activities", 799},
		{"Ray-Ban Aviator Sunglasses", "Classic sunglasses with UV protection", 499},
	},
	"books": {
		{"Atomic Habits", "Book about building good habits by James Clear", 79},
		{"Harry Potter Complete Collection", "All seven books in the series", 399},
		{"The Alchemist", "Paulo Coelho's bestselling novel", 49},
		{"Sapiens: A Brief History of Humankind", "Book by Yuval Noah Harari", 89},
		{"Rich Dad Poor Dad", "Personal finance book by Robert Kiyosaki", 59},
	},
	"sports": {
		{"Yoga Mat with Carrying Strap", "Non-slip exercise mat for yoga and fitness", 129},
		{"Basketball Spalding NBA", "Official size and weight basketball", 199},
		{"Tennis Racket Wilson Pro", "Professional tennis racket with cover", 599},
		{"Dumbbells Set 20kg", "Adjustable dumbbells for home workouts", 349},
		{"Fitbit Charge 5", "Advanced fitness tracker with GPS", 799},
	},
	"toys": {
		{"LEGO Star Wars Millennium Falcon", "Building set with minifigures", 699},
		{"Barbie Dreamhouse", "Doll house with furniture and accessories", 399},
		{"Nintendo Switch Games Bundle", "3 popular Switch games", 599},
		{"Remote Control Car", "High-speed RC car with rechargeable battery", 249},
		{"Monopoly Board Game", "Classic property trading game", 129},
	},
	"home": {
		{"Philips Air Fryer", "Digital air fryer for healthier cooking", 499},
		{"Dyson V11 Vacuum Cleaner", "Cordless vacuum with powerful suction", 2499},
		{"Cotton Bedsheet Set", "King size bedsheets with 4 pillowcases", 199},
		{"Nespresso Coffee Machine", "Automatic coffee maker with milk frother", 899},
		{"Ceramic Dinner Set", "16-piece dinner set for 4 people", 299},
	},
	"vehicles": {
		{"Mountain Bike", "21-speed mountain bike with front suspension", 1299},
		{"Electric Scooter", "Foldable e-scooter with 25km range", 1499},
		{"Car Roof Rack", "Universal roof rack for cars", 399},
		{"Motorcycle Helmet", "Full-face helmet with visor", 599},
		{"Bicycle Child Seat", "Rear-mounted child seat for bicycles", 299},
	},
	"others": {
		{"Gardening Tools Set", "Complete set of tools for home gardening", 199},
		{"Acoustic Guitar", "Beginner-friendly acoustic guitar with case", 699},
		{"Art Supplies Kit", "Painting and drawing supplies for artists", 249},
		{"Camping Tent 4-Person", "Waterproof tent for outdoor camping", 499},
		{"Digital Drawing Tablet", "Graphics tablet for digital artists", 899},
	},
}

// CatalogSize is the fixed number of products one run produces.
func CatalogSize() int {
	total := 0
	for _, items := range catalog {
		total += len(items)
	}
	return total
}

var cities = []string{
	"Kuala Lumpur", "Johor Bahru", "Ipoh", "George Town", "Shah Alam",
	"Petaling Jaya", "Kuching", "Kota Kinabalu", "Malacca City", "Alor Setar",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Sarah", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Karen", "Daniel", "Nancy", "Matthew",
	"Emily", "Kevin", "Amanda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Wilson", "Anderson", "Taylor", "Moore", "Lee", "Thompson",
	"White", "Tan", "Lim", "Wong", "Ng", "Chen",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "mail.com",
}

var openingMessages = []string{
	"Is this still available?",
	"Can you do $X for it?",
	"Where and when can we meet?",
	"Does it come with the original packaging?",
	"Can you send more pictures?",
	"I'm interested in this item.",
	"Would you be willing to deliver?",
	"Thanks, I'll think about it.",
}

var messageTemplates = []string{
	"Hi, is this still available?",
	"Yes, it's still available.",
	"What's the lowest you can go?",
	"I can do $PRICE.",
	"Can I see more pictures?",
	"Sure, I'll send some more pictures soon.",
	"Where are you located?",
	"I'm in CITY.",
	"When can we meet?",
	"How about tomorrow at 5pm?",
	"That works for me.",
	"Great, see you then!",
	"Is the condition really as described?",
	"Yes, it's in great condition.",
	"Do you have the original packaging?",
	"No, I don't have the original packaging anymore.",
	"Can you deliver it?",
	"Sorry, I can't deliver, but we can meet halfway.",
	"I'll think about it and get back to you.",
	"No problem, let me know if you have any other questions.",
}

var positiveReviewTexts = []string{
	"Great product, exactly as described!",
	"Very satisfied with my purchase.",
	"Fast shipping and excellent quality.",
	"The seller was very responsive and helpful.",
	"Would definitely buy from this seller again!",
}

var criticalReviewTexts = []string{
	"Product was okay, but not exactly as described.",
	"Shipping took longer than expected.",
	"Average quality for the price.",
	"Seller was slow to respond to my questions.",
	"It works, but I expected better quality.",
}

var reportReasons = []string{
	"Counterfeit item",
	"Inappropriate content",
	"Misleading description",
	"Prohibited item",
	"Scam",
}

var reportDescriptions = map[string]string{
	"Counterfeit item":       "I believe this item is not authentic as claimed.",
	"Inappropriate content":  "The listing contains inappropriate images or text.",
	"Misleading description": "The item description does not match the actual product.",
	"Prohibited item":        "This item should not be allowed for sale on the platform.",
	"Scam":                   "The seller is asking for payment outside the platform.",
}

var txnDescriptions = map[string]string{
	"Deposit":    "Wallet top-up",
	"Withdrawal": "Withdrawal to bank account",
	"Purchase":   "Product purchase",
	"Sale":       "Product sale",
}

const (
	defaultProductImageURL = "https://placehold.co/600x400?text=No+Image"
	defaultAvatarURL       = "https://placehold.co/256x256?text=No+Avatar"
)
