package rules

import "github.com/pablasso/maleta/internal/weather"

// Essentials are seeded into every checklist, in this order.
var Essentials = []EssentialCategory{
	{
		Key:  "clothes",
		Icon: "👔",
		Items: ItemSet{
			"Underwear":      {Multiplier: 1.2, Essential: true, Min: 3, Description: "Pack extras for comfort"},
			"Socks":          {Multiplier: 1.2, Essential: true, Min: 3, Description: "Mix of regular and athletic"},
			"Sleep bottoms":  {Multiplier: 0.4, Essential: true, Min: 2, Description: "Pajama pants or shorts"},
			"Sleep tops":     {Multiplier: 0.4, Essential: true, Min: 2, Description: "Comfortable sleeping shirts"},
			"Basic t-shirts": {Multiplier: 0.8, Essential: true, Min: 2, Description: "Versatile everyday wear"},
			"Pants/jeans":    {Multiplier: 0.4, Essential: true, Min: 2, Max: 4, Description: "Everyday bottoms"},
			"Casual shirts":  {Multiplier: 0.6, Essential: true, Min: 2, Description: "For dining and activities"},
		},
	},
	{
		Key:  "toiletries",
		Icon: "🧴",
		Items: ItemSet{
			"Toothbrush & toothpaste": {Essential: true, Description: "Travel-sized preferred"},
			"Shampoo & conditioner":   {Essential: true, Description: "Travel bottles or hotel provided"},
			"Body wash/soap":          {Essential: true},
			"Deodorant":               {Essential: true},
			"Medications":             {Essential: true, Description: "Prescription and basic meds"},
			"Razor & shaving cream":   {Description: "If needed"},
			"Skincare items":          {Description: "Moisturizer, sunscreen"},
		},
	},
	{
		Key:  "electronics",
		Icon: "💻",
		Items: ItemSet{
			"Phone charger":     {Essential: true, Description: "Consider backup cables also"},
			"Universal adapter": {Essential: true, Description: "For international travel"},
			"Power bank":        {Essential: true, Description: "10000mAh+ recommended"},
			"Headphones":        {Description: "For flights and downtime"},
		},
	},
	{
		Key:  "documents",
		Icon: "📄",
		Items: ItemSet{
			"Passport/ID":              {Essential: true, Description: "Check expiration date"},
			"Travel insurance":         {Essential: true, Description: "Print copy + digital"},
			"Flight/transport tickets": {Essential: true, Description: "Print backups and download offline"},
			"Hotel confirmations":      {Essential: true, Description: "Address and booking info"},
			"Credit/debit cards":       {Essential: true, Description: "Notify bank of travel"},
			"Cash":                     {Essential: true, Description: "Local currency if possible"},
		},
	},
}

// WeatherGroups contribute gear based on the forecast, evaluated in
// this order. All matching groups merge into the weather_gear category.
var WeatherGroups = []WeatherGroup{
	{
		Name: "cold",
		Trigger: func(forecast []weather.Day) bool {
			for _, day := range forecast {
				if day.TempC < 10 {
					return true
				}
			}
			return false
		},
		Items: ItemSet{
			"Warm jacket":    {Essential: true},
			"Thermal layers": {Multiplier: 0.4, Essential: true},
			"Warm hat":       {Essential: true},
			"Gloves":         {Multiplier: 0.2, Essential: true},
			"Scarf":          {},
			"Warm socks":     {Multiplier: 0.6, Essential: true},
		},
	},
	{
		Name: "hot",
		Trigger: func(forecast []weather.Day) bool {
			for _, day := range forecast {
				if day.TempC > 25 {
					return true
				}
			}
			return false
		},
		Items: ItemSet{
			"Light breathable shirts": {Multiplier: 0.8, Essential: true, Description: "Lightweight and breathable"},
			"Shorts":                  {Multiplier: 0.4, Essential: true},
			"Sun hat":                 {Essential: true},
			"Sunglasses":              {Essential: true},
			"Extra sunscreen":         {Essential: true},
			"Sandals":                 {},
		},
	},
	{
		Name: "rainy",
		Trigger: func(forecast []weather.Day) bool {
			for _, day := range forecast {
				if containsFold(day.Condition, "rain") || day.ChanceOfRain > 40 {
					return true
				}
			}
			return false
		},
		Items: ItemSet{
			"Waterproof jacket":  {Essential: true},
			"Compact umbrella":   {Essential: true},
			"Waterproof shoes":   {},
			"Rain cover for bag": {},
		},
	},
	{
		Name: "variable",
		Trigger: func(forecast []weather.Day) bool {
			if len(forecast) == 0 {
				return false
			}
			minTemp, maxTemp := forecast[0].TempC, forecast[0].TempC
			for _, day := range forecast[1:] {
				if day.TempC < minTemp {
					minTemp = day.TempC
				}
				if day.TempC > maxTemp {
					maxTemp = day.TempC
				}
			}
			return maxTemp-minTemp > 10
		},
		Items: ItemSet{
			"Layering pieces": {Multiplier: 0.4, Essential: true, Description: "For temperature changes"},
			"Light jacket":    {Essential: true},
			"Versatile pants": {Multiplier: 0.3, Essential: true},
		},
	},
}

// TemperatureBands select clothing by average trip temperature. The
// bands are contiguous with no gaps: exactly one matches any value.
var TemperatureBands = []TempBand{
	{
		Name:  "freezing",
		Match: func(avg int) bool { return avg < 0 },
		Items: ItemSet{
			"Heavy winter coat": {Essential: true},
			"Thermal underwear": {Multiplier: 0.6, Essential: true},
			"Heavy sweaters":    {Multiplier: 0.4, Essential: true},
			"Insulated boots":   {Essential: true},
		},
	},
	{
		Name:  "cold",
		Match: func(avg int) bool { return avg >= 0 && avg < 10 },
		Items: ItemSet{
			"Medium weight jacket": {Essential: true},
			"Sweaters":             {Multiplier: 0.4, Essential: true},
			"Long pants":           {Multiplier: 0.6, Essential: true},
			"Closed shoes":         {Multiplier: 0.2, Essential: true},
		},
	},
	{
		Name:  "mild",
		Match: func(avg int) bool { return avg >= 10 && avg <= 20 },
		Items: ItemSet{
			"Light jacket":         {},
			"Long sleeve shirts":   {Multiplier: 0.5, Essential: true},
			"Pants and shorts mix": {Multiplier: 0.4, Essential: true},
		},
	},
	{
		Name:  "warm",
		Match: func(avg int) bool { return avg > 20 && avg <= 30 },
		Items: ItemSet{
			"Light shirts":     {Multiplier: 0.8, Essential: true},
			"Shorts":           {Multiplier: 0.6, Essential: true},
			"Light pants":      {Multiplier: 0.3},
			"Breathable shoes": {Essential: true},
		},
	},
	{
		Name:  "hot",
		Match: func(avg int) bool { return avg > 30 },
		Items: ItemSet{
			"Ultra-light clothing": {Multiplier: 1, Essential: true},
			"Shorts only":          {Multiplier: 0.8, Essential: true},
			"Sandals":              {Essential: true},
			"Cooling accessories":  {},
		},
	},
}

// Activities maps activity tags to their gear. The engine processes
// tags in the order the user listed them.
var Activities = map[string]ActivityRule{
	"business": {
		Category: "business_items",
		Items: ItemSet{
			"Business attire":      {Multiplier: 0.4, Essential: true, Min: 2},
			"Dress shoes":          {Essential: true},
			"Laptop & accessories": {Essential: true},
			"Business cards":       {Essential: true},
			"Professional bag":     {Essential: true},
		},
	},
	"sightseeing": {
		Category: "activity_items",
		Items: ItemSet{
			"Comfortable walking shoes": {Multiplier: 0.2, Essential: true},
			"Day backpack":              {Essential: true},
			"Guidebook/maps":            {},
			"Portable charger":          {Essential: true},
			"Camera":                    {},
		},
	},
	"hiking": {
		Category: "hiking_gear",
		Items: ItemSet{
			"Hiking boots":       {Essential: true},
			"Hiking backpack":    {Essential: true},
			"Quick-dry clothing": {Multiplier: 0.6, Essential: true},
			"First aid kit":      {Essential: true},
			"Trail maps/GPS":     {Essential: true},
			"Water bottles":      {Multiplier: 0.2, Essential: true},
		},
	},
	"beach": {
		Category: "beach_gear",
		Items: ItemSet{
			"Swimwear":              {Multiplier: 0.4, Essential: true, Min: 2},
			"Beach towel":           {Essential: true},
			"Flip flops":            {Essential: true},
			"Beach bag":             {},
			"Waterproof phone case": {},
		},
	},
	"photography": {
		Category: "photography_gear",
		Items: ItemSet{
			"Camera equipment":  {Essential: true},
			"Extra batteries":   {Multiplier: 0.3, Essential: true},
			"Memory cards":      {Multiplier: 0.3, Essential: true},
			"Lens cleaning kit": {Essential: true},
			"Camera bag":        {Essential: true},
		},
	},
	"workout": {
		Category: "fitness_gear",
		Items: ItemSet{
			"Workout clothes":    {Multiplier: 0.4, Essential: true},
			"Athletic shoes":     {Essential: true},
			"Sports accessories": {},
			"Gym towel":          {Multiplier: 0.2},
		},
	},
}

// TripTypes contribute items for specific kinds of trips.
var TripTypes = map[string]TripTypeRule{
	"business": {
		Categories: []CategoryItems{
			{
				Category: "business_items",
				Items: ItemSet{
					"Professional wardrobe": {Multiplier: 0.5, Essential: true},
					"Work electronics":      {Essential: true},
					"Office supplies":       {Essential: true},
				},
			},
		},
	},
	"camping": {
		Categories: []CategoryItems{
			{
				Category: "camping_gear",
				Items: ItemSet{
					"Tent":             {Essential: true},
					"Sleeping bag":     {Essential: true},
					"Camping stove":    {Essential: true},
					"Camping utensils": {Essential: true},
					"Headlamp":         {Essential: true},
				},
			},
		},
	},
	"winter-sports": {
		Categories: []CategoryItems{
			{
				Category: "winter_sports_gear",
				Items: ItemSet{
					"Ski/snowboard wear":        {Essential: true},
					"Thermal layers":            {Multiplier: 0.8, Essential: true},
					"Winter sports accessories": {Essential: true},
				},
			},
		},
	},
}

// DurationBands contribute travel essentials by trip length.
var DurationBands = []DurationBand{
	{
		Name:  "weekend",
		Match: func(nights int) bool { return nights <= 3 },
		Items: ItemSet{
			"Travel-size toiletries": {Essential: true},
			"Minimal clothing":       {},
		},
	},
	{
		Name:  "week",
		Match: func(nights int) bool { return nights > 3 && nights <= 7 },
		Items: ItemSet{
			"Laundry detergent pods": {},
			"Extra toiletries":       {},
		},
	},
	{
		Name:  "extended",
		Match: func(nights int) bool { return nights > 7 },
		Items: ItemSet{
			"Laundry supplies": {Essential: true},
			"Extra toiletries": {Essential: true},
			"Backup chargers":  {Essential: true},
			"Sewing kit":       {},
		},
	},
}

// Keywords trigger on substrings of the lower-cased trip notes, in
// this order. Multiple keywords may all match and all contribute.
var Keywords = []KeywordRule{
	{
		Keyword:  "formal",
		Category: "formal_wear",
		Items: ItemSet{
			"Formal suit/dress":  {Essential: true},
			"Dress shoes":        {Essential: true},
			"Formal accessories": {},
		},
	},
	{
		Keyword:  "wedding",
		Category: "formal_wear",
		Items: ItemSet{
			"Wedding outfit": {Essential: true},
			"Dress shoes":    {Essential: true},
			"Gift/Card":      {Essential: true},
		},
	},
	{
		Keyword:  "conference",
		Category: "business_items",
		Items: ItemSet{
			"Name badge holder":    {Essential: true},
			"Extra business cards": {Essential: true},
			"Conference materials": {},
		},
	},
	{
		Keyword:  "baby",
		Category: "baby_items",
		Items: ItemSet{
			"Baby clothes":      {Multiplier: 1.5, Essential: true},
			"Diapers":           {Multiplier: 6, Essential: true},
			"Baby food/formula": {Multiplier: 3, Essential: true},
			"Baby carrier":      {Essential: true},
		},
	},
}

// Replacements resolve contradictions between independently added
// items, e.g. summer clothing present means winter layers go.
var Replacements = []Replacement{
	{
		Triggers: []string{"Light shirts", "Shorts"},
		Removes:  []string{"Heavy sweaters", "Thermal underwear", "Winter clothing"},
	},
	{
		Triggers: []string{"Warm jacket", "Thermal layers"},
		Removes:  []string{"Tank tops", "Light summer clothes"},
	},
	{
		Triggers: []string{"Business attire"},
		Removes:  []string{"Casual-only clothing"},
	},
	{
		Triggers: []string{"Hiking boots"},
		Removes:  []string{"Dress shoes only"},
	},
}

// TripTypeCatalog describes the selectable trip types for the CLI and
// TUI. DefaultActivities pre-fill the activity list when the user gives
// none.
var TripTypeCatalog = map[string]TripTypeInfo{
	"business":      {Name: "Business", Description: "Professional travel for work or conferences", DefaultActivities: []string{"business"}},
	"leisure":       {Name: "Leisure", Description: "Vacation and relaxation travel", DefaultActivities: []string{"sightseeing"}},
	"camping":       {Name: "Camping", Description: "Outdoor camping and wilderness trips", DefaultActivities: []string{"hiking"}},
	"winter-sports": {Name: "Winter Sports", Description: "Skiing, snowboarding, and winter activities"},
	"beach":         {Name: "Beach", Description: "Beach vacation and water activities", DefaultActivities: []string{"beach"}},
	"city-break":    {Name: "City Break", Description: "Short urban getaway", DefaultActivities: []string{"sightseeing"}},
}

// ActivityCatalog describes the selectable activity tags.
var ActivityCatalog = map[string]ActivityInfo{
	"business":    {Name: "Business Meetings", Icon: "💼"},
	"sightseeing": {Name: "Sightseeing", Icon: "🏛️"},
	"hiking":      {Name: "Hiking", Icon: "🥾"},
	"beach":       {Name: "Beach Activities", Icon: "🏖️"},
	"workout":     {Name: "Gym & Fitness", Icon: "💪"},
	"photography": {Name: "Photography", Icon: "📸"},
}
