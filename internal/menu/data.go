package menu

// Static menu content. Prices are in shekels; items without a price are
// priced by the day.

var categories = []Category{
	{ID: Starters, Title: Localized{LangEN: "Starters", LangHE: "ראשונות", LangAR: "مقبلات"}},
	{ID: FromOurKitchen, Title: Localized{LangEN: "From our kitchen", LangHE: "מהמטבח שלנו", LangAR: "من مطبخنا"}},
	{ID: MainDishes, Title: Localized{LangEN: "Main dishes", LangHE: "עיקריות", LangAR: "وجبات رئيسية"}},
	{ID: Plates, Title: Localized{LangEN: "Plates", LangHE: "מנות", LangAR: "بالنص"}},
}

var items = []Item{
	// Starters
	{
		ID: "salad_set", Category: Starters, Price: 55,
		Name:        Localized{LangEN: "Salad set", LangHE: "סט סלטים", LangAR: "تشكيلة سلطات"},
		Description: Localized{LangEN: "Assorted fresh salads", LangHE: "מבחר סלטים טריים", LangAR: "تشكيلة من السلطات الطازجة"},
	},
	{
		ID: "million_salad", Category: Starters, Price: 68, Image: "Million_$.jpg",
		Name: Localized{LangEN: "Million $ salad", LangHE: "סלט מיליון $", LangAR: "سلطة مليون $"},
	},
	{
		ID: "quinoa_salad", Category: Starters, Price: 68, Image: "Kenowa_Sallad.jpg",
		Name:        Localized{LangEN: "Quinoa salad", LangHE: "סלט קינואה", LangAR: "سلطة كينوا"},
		Description: Localized{LangEN: "Quinoa with fresh vegetables", LangHE: "קינואה עם ירקות טריים", LangAR: "كينوا مع خضار طازجة"},
	},
	{
		ID: "caesar_salad", Category: Starters, Price: 72, Image: "ceasar_salad.jpg",
		Name:        Localized{LangEN: "Caesar salad", LangHE: "סלט קיסר", LangAR: "سلطة سيزر"},
		Description: Localized{LangEN: "With grilled chicken and parmesan", LangHE: "עם עוף על הגריל ופרמזן", LangAR: "مع دجاج مشوي وبارميزان"},
	},
	{
		ID: "fattoush", Category: Starters, Price: 54, Image: "Fatoush.jpg",
		Name:        Localized{LangEN: "Fattoush", LangHE: "פטוש", LangAR: "فتوش"},
		Description: Localized{LangEN: "Cucumber, tomato, lettuce, onion, mint & sumac", LangHE: "מלפפון, עגבנייה, חסה, בצל, נענע וסומאק", LangAR: "خيار، بندورة، خس، بصل، نعنع وسماق"},
	},
	{
		ID: "jarjir_salad", Category: Starters, Price: 45, Image: "Jarjir_Salad.jpg",
		Name: Localized{LangEN: "Jarjir (Rocket) salad", LangHE: "סלט ג׳רג׳יר (רוקט)", LangAR: "سلطة جرجير"},
	},
	{
		ID: "tabbouleh_salad", Category: Starters, Price: 49, Image: "tabuleh2.jpg",
		Name: Localized{LangEN: "Tabbouleh salad", LangHE: "טאבולה סלט", LangAR: "تبولة (سلطة)"},
	},
	{
		ID: "moajanat", Category: Starters, Price: 65, Image: "moajanat.jpg",
		Name: Localized{LangEN: "Moajanat (4 pastries)", LangHE: "מואג׳נאת", LangAR: "معجنات"},
	},
	{
		ID: "homemade_hummus", Category: Starters, Price: 36, Image: "hummus.jpg",
		Name: Localized{LangEN: "Homemade hummus", LangHE: "חומוס ביתי", LangAR: "حمص"},
	},
	{
		ID: "labaneh", Category: Starters, Price: 35, Image: "labaneh.jpg",
		Name: Localized{LangEN: "Labaneh", LangHE: "לבאנה", LangAR: "لبنة"},
	},
	{
		ID: "fried_cauliflower_tahini", Category: Starters, Price: 46,
		Name:        Localized{LangEN: "Fried cauliflower with tahini", LangHE: "זהרה", LangAR: "قرنبيط مقلي مع طحينة"},
		Description: Localized{LangHE: "כרובית עם טחינה"},
	},
	{
		ID: "jibneh", Category: Starters, Price: 45, Image: "jebneh_fingers.jpg",
		Name:        Localized{LangEN: "Jibneh", LangHE: "ג׳יבנה", LangAR: "جبنة"},
		Description: Localized{LangEN: "Fried Arabic cheese", LangHE: "גבינה ערבית צרובה", LangAR: "جبنة عربية مقلية"},
	},
	{
		ID: "baba_ghanouj", Category: Starters, Price: 53, Image: "Baba_Ghanouj.jpg",
		Name: Localized{LangEN: "Baba ghanouj", LangHE: "באבא ג׳נוז׳", LangAR: "بابا غنوج"},
	},
	{
		ID: "french_fries", Category: Starters, Price: 25,
		Name: Localized{LangEN: "French fries", LangHE: "צ׳יפס", LangAR: "بطاطا مقلية"},
	},

	// From our kitchen
	{
		ID: "dish_of_the_day", Category: FromOurKitchen,
		Name:        Localized{LangEN: "Dish of the day", LangHE: "מנת היום", LangAR: "طبق اليوم"},
		Description: Localized{LangEN: "Ask the waiters", LangHE: "שאל את המלצר", LangAR: "اسألوا النُدُل"},
	},
	{
		ID: "mujadara", Category: FromOurKitchen, Price: 48, Image: "Mjaddarah.jpg",
		Name: Localized{LangEN: "Mujadara", LangHE: "מג׳דרה", LangAR: "مجدّرة"},
	},
	{
		ID: "mlokhia", Category: FromOurKitchen, Price: 52, Image: "Mlokheyyeh.jpg",
		Name: Localized{LangEN: "Molokhia", LangHE: "מלוחיה", LangAR: "ملوخية"},
	},
	{
		ID: "freekeh", Category: FromOurKitchen, Price: 55, Image: "Freekeh.jpg",
		Name: Localized{LangEN: "Freekeh", LangHE: "פריקה", LangAR: "فريكة"},
	},
	{
		ID: "shish_barak", Category: FromOurKitchen, Price: 92, Image: "shishbarak.jpg",
		Name: Localized{LangEN: "Shish Barak", LangHE: "שיש ברק", LangAR: "شيشبرك"},
	},
	{
		ID: "baked_kibbeh", Category: FromOurKitchen, Price: 78, Image: "Kubbeh.jpg",
		Name: Localized{LangEN: "Baked kibbeh", LangHE: "קובה אפויה", LangAR: "كبة بالفرن"},
	},
	{
		ID: "mansaf", Category: FromOurKitchen, Price: 138, Image: "mansaf.jpg",
		Name: Localized{LangEN: "Mansaf", LangHE: "מנסף", LangAR: "منسف"},
	},

	// Main dishes
	{
		ID: "mixed_grill", Category: MainDishes, Price: 200,
		Name: Localized{LangEN: "Mixed grill", LangHE: "פלטת בשרים על האש", LangAR: "مشكل مشاوي"},
	},
	{
		ID: "entrecote_300g", Category: MainDishes, Price: 148, Image: "antricot.jpg",
		Name: Localized{LangEN: "Entrecote 300g", LangHE: "אנטריקוט 300 גרם", LangAR: "ستيك انتريكوت 300 غرام"},
	},
	{
		ID: "fish_fillet", Category: MainDishes, Price: 71, Image: "Fish_Fillet.jpg",
		Name: Localized{LangEN: "Fish fillet", LangHE: "פילה דג", LangAR: "فيليه سمك"},
	},
	{
		ID: "grilled_shrimp", Category: MainDishes, Price: 95, Image: "shrimp_grill.jpg",
		Name: Localized{LangEN: "Grilled shrimp", LangHE: "שרימפס על הגריל", LangAR: "روبيان مشوي"},
	},
	{
		ID: "salmon_fillet", Category: MainDishes, Price: 128, Image: "salmon.jpg",
		Name: Localized{LangEN: "Salmon fillet", LangHE: "פילה סלמון", LangAR: "فيليه سلمون"},
	},
	{
		ID: "fish_of_the_day_with_freekeh", Category: MainDishes, Price: 98, Image: "Dennis_Fillet.jpg",
		Name: Localized{LangEN: "Fish of the day with freekeh", LangHE: "דג היום עם פריקה", LangAR: "سمكة اليوم مع فريكة"},
	},
	{
		ID: "shrimp_with_garlic_sauce", Category: MainDishes, Price: 98, Image: "cream_shrimp.jpg",
		Name:        Localized{LangEN: "Shrimp with garlic sauce", LangHE: "שרימפס ברוטב שום", LangAR: "روبيان بصلصة الثوم"},
		Description: Localized{LangEN: "Shrimp with garlic sauce", LangHE: "קדירת שרימפס עם לימון, פלפל חריף ורטוב שום", LangAR: "روبيان بصلصة الثوم"},
	},

	// Plates
	{
		ID: "tongue", Category: Plates, Price: 70, Image: "Toung.jpg",
		Name: Localized{LangEN: "Tounge", LangHE: "לשונות", LangAR: "لسنات"},
	},
	{
		ID: "asian", Category: Plates, Price: 72, Image: "Asian.jpg",
		Name: Localized{LangEN: "Asian", LangHE: "אסייתי", LangAR: "آسيوي"},
	},
	{
		ID: "fahita", Category: Plates, Price: 70, Image: "Fahita.jpg",
		Name: Localized{LangEN: "Fahita", LangHE: "פחיטה", LangAR: "فاهيتا"},
	},
	{
		ID: "ravioli", Category: Plates, Price: 65, Image: "Raviolle.jpg",
		Name: Localized{LangEN: "Ravioli", LangHE: "רביולי", LangAR: "رافيولي"},
	},
	{
		ID: "fish_and_chips", Category: Plates,
		Name: Localized{LangEN: "Fish & chips", LangHE: "פיש אנד צ׳יפס", LangAR: "فيش أند تشيبس"},
	},
	{
		ID: "shami_arayes", Category: Plates, Price: 70, Image: "Arayes_Shami.jpg",
		Name: Localized{LangEN: "Shamia", LangHE: "שאמיה", LangAR: "شامية"},
	},
	{
		ID: "sushi_arayes", Category: Plates, Price: 70, Image: "Sushi_Arayes.jpg",
		Name: Localized{LangEN: "Arayes", LangHE: "עראיס", LangAR: "عرايس"},
	},
	{
		ID: "schnitzel", Category: Plates, Price: 72, Image: "shnitzel.jpg",
		Name: Localized{LangEN: "Schnitzel", LangHE: "שניצל", LangAR: "شنيتسل"},
	},
}
