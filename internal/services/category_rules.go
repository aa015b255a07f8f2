package services

import "fintrack/internal/models"

// categoryRule maps a set of lowercase substring patterns to one category.
// Rules are evaluated in order; the first matching rule wins.
type categoryRule struct {
	patterns []string
	category string
}

// initUPIHandleRules returns the UPI-handle rule tier. The handle is the
// service identifier embedded in the payment rail, so these are the most
// reliable signals and are checked first.
func initUPIHandleRules() []categoryRule {
	return []categoryRule{
		{
			patterns: []string{"zomato", "swiggy", "foodpanda", "dunzo", "blinkit.food", "eatfit", "freshmenu", "faasos", "boxncow", "rebel.food", "eatsure"},
			category: models.CategoryFood,
		},
		{
			patterns: []string{"amazon", "flipkart", "myntra", "meesho", "ajio", "nykaa", "snapdeal", "shopsy", "tatacliq", "firstcry", "bigbasket", "jiomart", "blinkit", "zepto", "instamart", "grofers", "dmart", "reliance"},
			category: models.CategoryShopping,
		},
		{
			patterns: []string{"uber", "ola", "rapido", "yulu", "bounce", "drivezy", "blowhorn", "porter", "metroemo", "metro", "irctc", "redbus", "abhibus", "makemytrip.transport"},
			category: models.CategoryTransport,
		},
		{
			patterns: []string{"netflix", "spotify", "hotstar", "primevideo", "sonyliv", "zee5", "jiocinema", "bookmyshow", "paytminsider", "youtube", "gaana", "jiosaavn", "hungama", "mxplayer", "voot", "alt.balaji"},
			category: models.CategoryEntertainment,
		},
		{
			patterns: []string{"apollo", "pharmeasy", "netmeds", "tata1mg", "1mg", "medlife", "docsapp", "practo", "lybrate", "healthians", "thyrocare", "portea", "cult.fit", "curefit"},
			category: models.CategoryHealth,
		},
		{
			patterns: []string{"airtel", "jio", "vodafone", "bsnl", "payair", "vi.pay", "bescom", "msedcl", "bses", "tpddl", "cesc", "adanielectricity", "tatapower", "mahadiscom", "torrentpower", "paytm.utility", "billdesk", "bajajfinserv.emi"},
			category: models.CategoryUtilities,
		},
		{
			patterns: []string{"groww", "zerodha", "upstox", "angelone", "angelbroking", "icicidirect", "hdfcsec", "kotaksec", "sbisec", "motilal", "nuvama", "paytmmoney", "kuvera", "coin.zerodha", "mfcentral", "camsonline", "nsdl", "cdsl", "npscra"},
			category: models.CategoryInvestment,
		},
		{
			patterns: []string{"makemytrip", "goibibo", "yatra", "cleartrip", "ixigo", "airasia", "indigo", "spicejet", "airindia", "vistara", "akasaair", "oyo", "treebo", "fabhotels", "zostel", "airbnb"},
			category: models.CategoryTravel,
		},
		{
			patterns: []string{"udemy", "coursera", "byjus", "unacademy", "vedantu", "whitehatjr", "toppr", "extramarks", "meritnation", "simplilearn", "scaler", "upgrad", "lpu", "twc", "college", "university", "school", "fees"},
			category: models.CategoryEducation,
		},
		{
			patterns: []string{"nobroker", "magicbricks", "housing.com", "nestaway", "stanza", "colive", "rent", "landlord", "pg.pay", "commonfloor"},
			category: models.CategoryRent,
		},
	}
}

// initMerchantKeywordRules returns the merchant-keyword rule tier. These
// are broader, more permissive lists tested against the merchant segment
// of a UPI reference and, failing that, the full description text.
func initMerchantKeywordRules() []categoryRule {
	return []categoryRule{
		{
			patterns: []string{"zomato", "swiggy", "food", "foods", "kitchen", "kitchn", "cafe", "restaurant", "hotel", "dhaba", "biryani", "pizza", "burger", "chai", "chaivyan", "nk food", "shiva fo", "belgian", "belg", "juice", "bakery", "sweet", "canteen", "mess", "tiffin", "dabba"},
			category: models.CategoryFood,
		},
		{
			patterns: []string{"amazon", "flipkart", "myntra", "meesho", "ajio", "nykaa", "shopping", "mart", "store", "shop", "market", "bazar", "bazaar", "retail", "dmart", "reliance", "bigbasket", "grocer", "grocery", "kirana", "vegetables", "fruits"},
			category: models.CategoryShopping,
		},
		{
			patterns: []string{"uber", "ola", "rapido", "metro", "metroemo", "bus", "auto", "taxi", "cab", "travel", "transport", "petrol", "fuel", "pump", "irctc", "railway", "train", "flight", "airline", "redbus", "porter"},
			category: models.CategoryTransport,
		},
		{
			patterns: []string{"netflix", "spotify", "prime", "hotstar", "bookmyshow", "cinema", "movie", "theatre", "gaming", "game", "play", "entertainment", "music", "show"},
			category: models.CategoryEntertainment,
		},
		{
			patterns: []string{"apollo", "pharma", "pharmacy", "medical", "medicine", "doctor", "hospital", "clinic", "health", "diagnostic", "lab", "test", "fitness", "gym", "cult", "yoga", "chemist", "drug"},
			category: models.CategoryHealth,
		},
		{
			patterns: []string{"airtel", "jio", "vodafone", "bsnl", "electricity", "electric", "power", "bill", "recharge", "broadband", "internet", "water", "gas", "utility", "bescom", "msedcl", "tatapower", "wifi"},
			category: models.CategoryUtilities,
		},
		{
			patterns: []string{"groww", "zerodha", "upstox", "angel", "invest", "sip", "mutual fund", "stock", "share", "demat", "nps", "ppf", "fd", "fixed deposit", "insurance", "lic", "hdfc life", "icici pru"},
			category: models.CategoryInvestment,
		},
		{
			patterns: []string{"hotel", "oyo", "treebo", "airbnb", "flight", "indigo", "spicejet", "makemytrip", "goibibo", "yatra", "cleartrip", "ixigo", "resort", "lodge", "hostel", "booking"},
			category: models.CategoryTravel,
		},
		{
			patterns: []string{"lpu", "university", "college", "school", "udemy", "coursera", "byjus", "unacademy", "coaching", "tuition", "classes", "education", "course", "fees", "admission", "twc"},
			category: models.CategoryEducation,
		},
		{
			patterns: []string{"rent", "landlord", "house rent", "pg rent", "room rent", "flat rent", "accommodation"},
			category: models.CategoryRent,
		},
		{
			patterns: []string{"salary", "stipend", "income", "bonus", "payroll", "nfsi", "imps-in", "neft-in", "neft_in", "credit"},
			category: models.CategorySalary,
		},
		{
			patterns: []string{"atm", "cash withdrawal", "wdr", "withdraw"},
			category: models.CategoryOther,
		},
	}
}
