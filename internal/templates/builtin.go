package templates

var builtin = []Template{
	{
		ID:          "fitness",
		Name:        "Fitness",
		Icon:        "dumbbell",
		Description: "Before a workout",
		Items: []Item{
			{Title: "Sportswear", Icon: "tshirt-crew"},
			{Title: "Sneakers", Icon: "shoe-sneaker"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Gym bag", Icon: "bag"},
			{Title: "Headphones", Icon: "headphones"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "travel",
		Name:        "Travel",
		Icon:        "airplane",
		Description: "Before a trip",
		Items: []Item{
			{Title: "Passport/ID", Icon: "card-account-details"},
			{Title: "Tickets", Icon: "ticket"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Power bank", Icon: "battery-charging"},
			{Title: "Camera", Icon: "camera"},
			{Title: "Change of clothes", Icon: "hanger"},
			{Title: "Toiletries", Icon: "shower"},
			{Title: "Medicine", Icon: "pill"},
			{Title: "Map/Navigation", Icon: "map"},
		},
	},
	{
		ID:          "parenting",
		Name:        "Parenting",
		Icon:        "baby-face-outline",
		Description: "Going out with kids",
		Items: []Item{
			{Title: "Diapers", Icon: "baby-buggy"},
			{Title: "Wet wipes", Icon: "tissue"},
			{Title: "Baby bottle", Icon: "cup"},
			{Title: "Formula", Icon: "food"},
			{Title: "Change of clothes", Icon: "hanger"},
			{Title: "Toys", Icon: "toy-brick"},
			{Title: "Stroller", Icon: "car"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Blanket", Icon: "blanket"},
			{Title: "Snacks", Icon: "cookie"},
		},
	},
	{
		ID:          "school",
		Name:        "School",
		Icon:        "school",
		Description: "Before class",
		Items: []Item{
			{Title: "Backpack", Icon: "bag"},
			{Title: "Textbooks", Icon: "book-open-variant"},
			{Title: "Notebook", Icon: "notebook"},
			{Title: "Pen", Icon: "pencil"},
			{Title: "Student ID", Icon: "card-account-details"},
			{Title: "Lunch box", Icon: "food"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Phone", Icon: "cellphone"},
		},
	},
	{
		ID:          "tutoring",
		Name:        "Tutoring",
		Icon:        "book-education",
		Description: "Before tutoring",
		Items: []Item{
			{Title: "Backpack", Icon: "bag"},
			{Title: "Materials", Icon: "book-open-variant"},
			{Title: "Homework", Icon: "file-document"},
			{Title: "Notebook", Icon: "notebook"},
			{Title: "Pen", Icon: "pencil"},
			{Title: "Calculator", Icon: "calculator"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Wallet", Icon: "wallet"},
		},
	},
	{
		ID:          "basketball",
		Name:        "Basketball",
		Icon:        "basketball",
		Description: "Before a game",
		Items: []Item{
			{Title: "Jersey", Icon: "tshirt-crew"},
			{Title: "Court shoes", Icon: "shoe-sneaker"},
			{Title: "Basketball", Icon: "basketball"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Gym bag", Icon: "bag"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "hiking",
		Name:        "Hiking",
		Icon:        "hiking",
		Description: "Before a hike",
		Items: []Item{
			{Title: "Backpack", Icon: "bag"},
			{Title: "Hiking boots", Icon: "shoe-hiking"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Food", Icon: "food"},
			{Title: "Raincoat", Icon: "weather-rainy"},
			{Title: "Flashlight", Icon: "flashlight"},
			{Title: "Map", Icon: "map"},
			{Title: "First-aid kit", Icon: "medical-bag"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Power bank", Icon: "battery-charging"},
		},
	},
	{
		ID:          "doctor",
		Name:        "Doctor",
		Icon:        "doctor",
		Description: "Before a doctor visit",
		Items: []Item{
			{Title: "Health card", Icon: "card-account-details"},
			{Title: "ID card", Icon: "card-account"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Medical records", Icon: "file-document"},
			{Title: "Prescriptions", Icon: "pill"},
			{Title: "Face mask", Icon: "face-mask"},
		},
	},
	{
		ID:          "date",
		Name:        "Date",
		Icon:        "heart",
		Description: "Before a date",
		Items: []Item{
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
			{Title: "Gift", Icon: "gift"},
			{Title: "Umbrella", Icon: "umbrella"},
			{Title: "Charger", Icon: "power-plug"},
		},
	},
	{
		ID:          "movie",
		Name:        "Movie",
		Icon:        "movie",
		Description: "Before the movies",
		Items: []Item{
			{Title: "Movie ticket", Icon: "ticket"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
			{Title: "Glasses", Icon: "glasses"},
		},
	},
	{
		ID:          "concert",
		Name:        "Concert",
		Icon:        "music",
		Description: "Before a concert",
		Items: []Item{
			{Title: "Concert ticket", Icon: "ticket"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Power bank", Icon: "battery-charging"},
			{Title: "Camera", Icon: "camera"},
			{Title: "Earplugs", Icon: "ear-hearing"},
		},
	},
	{
		ID:          "shopping",
		Name:        "Shopping",
		Icon:        "shopping",
		Description: "Before shopping",
		Items: []Item{
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Credit card", Icon: "credit-card"},
			{Title: "Shopping bag", Icon: "bag"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Shopping list", Icon: "file-document"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "workout",
		Name:        "Workout",
		Icon:        "run",
		Description: "Before exercising",
		Items: []Item{
			{Title: "Sportswear", Icon: "tshirt-crew"},
			{Title: "Sneakers", Icon: "shoe-sneaker"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Gym bag", Icon: "bag"},
			{Title: "Phone", Icon: "cellphone"},
		},
	},
	{
		ID:          "swimming",
		Name:        "Swimming",
		Icon:        "swim",
		Description: "Before swimming",
		Items: []Item{
			{Title: "Swimsuit", Icon: "tshirt-crew"},
			{Title: "Swim cap", Icon: "hat-fedora"},
			{Title: "Goggles", Icon: "glasses"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Sandals", Icon: "shoe-sneaker"},
			{Title: "Toiletries", Icon: "shower"},
			{Title: "Change of clothes", Icon: "hanger"},
			{Title: "Dry bag", Icon: "bag"},
		},
	},
	{
		ID:          "camping",
		Name:        "Camping",
		Icon:        "tent",
		Description: "Before camping",
		Items: []Item{
			{Title: "Tent", Icon: "tent"},
			{Title: "Sleeping bag", Icon: "blanket"},
			{Title: "Lantern", Icon: "lightbulb"},
			{Title: "Food", Icon: "food"},
			{Title: "Water", Icon: "water"},
			{Title: "Cookware", Icon: "pot"},
			{Title: "Flashlight", Icon: "flashlight"},
			{Title: "First-aid kit", Icon: "medical-bag"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Power bank", Icon: "battery-charging"},
		},
	},
	{
		ID:          "beach",
		Name:        "Beach",
		Icon:        "beach",
		Description: "Before the beach",
		Items: []Item{
			{Title: "Swimsuit", Icon: "tshirt-crew"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Sunscreen", Icon: "lotion"},
			{Title: "Sunglasses", Icon: "glasses"},
			{Title: "Sun hat", Icon: "hat-fedora"},
			{Title: "Sandals", Icon: "shoe-sneaker"},
			{Title: "Water", Icon: "water"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Dry bag", Icon: "bag"},
		},
	},
	{
		ID:          "picnic",
		Name:        "Picnic",
		Icon:        "food",
		Description: "Before a picnic",
		Items: []Item{
			{Title: "Picnic mat", Icon: "blanket"},
			{Title: "Food", Icon: "food"},
			{Title: "Drinks", Icon: "cup"},
			{Title: "Cutlery", Icon: "silverware"},
			{Title: "Trash bags", Icon: "bag"},
			{Title: "Wet wipes", Icon: "tissue"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Camera", Icon: "camera"},
		},
	},
	{
		ID:          "library",
		Name:        "Library",
		Icon:        "library",
		Description: "Before the library",
		Items: []Item{
			{Title: "Library card", Icon: "card-account-details"},
			{Title: "Backpack", Icon: "bag"},
			{Title: "Notebook", Icon: "notebook"},
			{Title: "Pen", Icon: "pencil"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Headphones", Icon: "headphones"},
		},
	},
	{
		ID:          "gym",
		Name:        "Gym",
		Icon:        "dumbbell",
		Description: "Before the gym",
		Items: []Item{
			{Title: "Sportswear", Icon: "tshirt-crew"},
			{Title: "Sneakers", Icon: "shoe-sneaker"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Membership card", Icon: "card-account-details"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Headphones", Icon: "headphones"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "interview",
		Name:        "Interview",
		Icon:        "briefcase",
		Description: "Before an interview",
		Items: []Item{
			{Title: "Resume", Icon: "file-document"},
			{Title: "ID", Icon: "card-account-details"},
			{Title: "Portfolio", Icon: "folder"},
			{Title: "Pen", Icon: "pencil"},
			{Title: "Notebook", Icon: "notebook"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "meeting",
		Name:        "Meeting",
		Icon:        "account-group",
		Description: "Before a meeting",
		Items: []Item{
			{Title: "Notebook", Icon: "notebook"},
			{Title: "Pen", Icon: "pencil"},
			{Title: "Documents", Icon: "file-document"},
			{Title: "Laptop", Icon: "laptop"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Business cards", Icon: "card-account-details"},
		},
	},
	{
		ID:          "party",
		Name:        "Party",
		Icon:        "party-popper",
		Description: "Before a party",
		Items: []Item{
			{Title: "Gift", Icon: "gift"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
			{Title: "Camera", Icon: "camera"},
			{Title: "Charger", Icon: "power-plug"},
		},
	},
	{
		ID:          "wedding",
		Name:        "Wedding",
		Icon:        "ring",
		Description: "Before a wedding",
		Items: []Item{
			{Title: "Gift money", Icon: "wallet"},
			{Title: "Formal wear", Icon: "tshirt-crew"},
			{Title: "Gift", Icon: "gift"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Camera", Icon: "camera"},
			{Title: "Charger", Icon: "power-plug"},
		},
	},
	{
		ID:          "business",
		Name:        "Business trip",
		Icon:        "briefcase",
		Description: "Before a business trip",
		Items: []Item{
			{Title: "Passport/ID", Icon: "card-account-details"},
			{Title: "Plane ticket", Icon: "ticket"},
			{Title: "Laptop", Icon: "laptop"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Change of clothes", Icon: "hanger"},
			{Title: "Toiletries", Icon: "shower"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
		},
	},
	{
		ID:          "hospital",
		Name:        "Hospital visit",
		Icon:        "hospital",
		Description: "Before visiting a patient",
		Items: []Item{
			{Title: "Get-well gift", Icon: "gift"},
			{Title: "Face mask", Icon: "face-mask"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "museum",
		Name:        "Exhibition",
		Icon:        "palette",
		Description: "Before an exhibition",
		Items: []Item{
			{Title: "Ticket", Icon: "ticket"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Camera", Icon: "camera"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "karaoke",
		Name:        "Karaoke",
		Icon:        "microphone",
		Description: "Before karaoke",
		Items: []Item{
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Charger", Icon: "power-plug"},
			{Title: "Keys", Icon: "key"},
		},
	},
	{
		ID:          "fishing",
		Name:        "Fishing",
		Icon:        "fish",
		Description: "Before fishing",
		Items: []Item{
			{Title: "Fishing rod", Icon: "fishing"},
			{Title: "Tackle", Icon: "toolbox"},
			{Title: "Bait", Icon: "food"},
			{Title: "Water", Icon: "water"},
			{Title: "Food", Icon: "food"},
			{Title: "Hat", Icon: "hat-fedora"},
			{Title: "Sunglasses", Icon: "glasses"},
			{Title: "Phone", Icon: "cellphone"},
		},
	},
	{
		ID:          "cycling",
		Name:        "Cycling",
		Icon:        "bike",
		Description: "Before a ride",
		Items: []Item{
			{Title: "Helmet", Icon: "hat-fedora"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
			{Title: "Wallet", Icon: "wallet"},
			{Title: "Repair kit", Icon: "toolbox"},
		},
	},
	{
		ID:          "yoga",
		Name:        "Yoga",
		Icon:        "yoga",
		Description: "Before yoga",
		Items: []Item{
			{Title: "Yoga mat", Icon: "blanket"},
			{Title: "Sportswear", Icon: "tshirt-crew"},
			{Title: "Water bottle", Icon: "water"},
			{Title: "Towel", Icon: "towel"},
			{Title: "Phone", Icon: "cellphone"},
			{Title: "Keys", Icon: "key"},
		},
	},
}
