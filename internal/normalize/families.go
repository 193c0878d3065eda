package normalize

import "regexp"

type familyRule struct {
	pattern *regexp.Regexp
	key     string
	display string
}

func fam(expr, key, display string) familyRule {
	return familyRule{pattern: regexp.MustCompile(expr), key: key, display: display}
}

// families is evaluated top to bottom and the first hit wins. Within a family
// the specific variant comes before the generic one ("red onion" before
// "onion"), and items named after another ingredient ("garlic powder",
// "chicken broth", "peanut butter") come before that ingredient.
var families = []familyRule{
	// Broths, stocks, sauces and vinegars.
	fam(`\bchicken (?:broth|stock)\b`, "chicken broth", "Chicken broth"),
	fam(`\bbeef (?:broth|stock)\b`, "beef broth", "Beef broth"),
	fam(`\b(?:vegetable|veggie) (?:broth|stock)\b`, "vegetable broth", "Vegetable broth"),
	fam(`\bchicken bouillon\b`, "chicken bouillon", "Chicken bouillon"),
	fam(`\bsoy sauce\b|\btamari\b`, "soy sauce", "Soy sauce"),
	fam(`\bfish sauce\b`, "fish sauce", "Fish sauce"),
	fam(`\bworcestershire(?: sauce)?\b`, "worcestershire sauce", "Worcestershire sauce"),
	fam(`\bhot sauce\b|\bsriracha\b|\btabasco\b`, "hot sauce", "Hot sauce"),
	fam(`\b(?:bbq|barbecue) sauce\b`, "barbecue sauce", "Barbecue sauce"),
	fam(`\bmarinara(?: sauce)?\b|\bpasta sauce\b`, "marinara sauce", "Marinara sauce"),
	fam(`\btomato paste\b`, "tomato paste", "Tomato paste"),
	fam(`\btomato sauce\b`, "tomato sauce", "Tomato sauce"),
	fam(`\bcrushed tomato(?:es)?\b`, "crushed tomatoes", "Crushed tomatoes"),
	fam(`\bsun[- ]dried tomato(?:es)?\b`, "sun-dried tomatoes", "Sun-dried tomatoes"),
	fam(`\bsalsa\b`, "salsa", "Salsa"),
	fam(`\bketchup\b|\bcatsup\b`, "ketchup", "Ketchup"),
	fam(`\bmayonnaise\b|\bmayo\b`, "mayonnaise", "Mayonnaise"),
	fam(`\bdijon(?: mustard)?\b`, "dijon mustard", "Dijon mustard"),
	fam(`\b(?:dry|ground) mustard\b|\bmustard powder\b`, "dry mustard", "Dry mustard"),
	fam(`\b(?:yellow )?mustard\b`, "mustard", "Mustard"),
	fam(`\bbalsamic(?: vinegar)?\b`, "balsamic vinegar", "Balsamic vinegar"),
	fam(`\bapple cider vinegar\b|\bcider vinegar\b`, "apple cider vinegar", "Apple cider vinegar"),
	fam(`\bred wine vinegar\b`, "red wine vinegar", "Red wine vinegar"),
	fam(`\brice (?:wine )?vinegar\b`, "rice vinegar", "Rice vinegar"),
	fam(`\b(?:white|distilled) vinegar\b`, "white vinegar", "White vinegar"),
	fam(`\bpesto\b`, "pesto", "Pesto"),
	fam(`\bpickles?\b`, "pickles", "Pickles"),
	fam(`\bcorn syrup\b`, "corn syrup", "Corn syrup"),
	fam(`\bpeanut butter\b`, "peanut butter", "Peanut butter"),
	fam(`\bhoney\b`, "honey", "Honey"),
	fam(`\bmaple syrup\b`, "maple syrup", "Maple syrup"),

	// Spices and seasonings named after produce.
	fam(`\bgarlic powder\b|\bgranulated garlic\b`, "garlic powder", "Garlic powder"),
	fam(`\bgarlic salt\b`, "garlic salt", "Garlic salt"),
	fam(`\bonion powder\b|\bgranulated onion\b`, "onion powder", "Onion powder"),
	fam(`\bcelery salt\b`, "celery salt", "Celery salt"),
	fam(`\bcelery seeds?\b`, "celery seed", "Celery seed"),
	fam(`\bchil[ei] powder\b`, "chili powder", "Chili powder"),
	fam(`\bred pepper flakes\b|\bcrushed red pepper(?: flakes)?\b|\bchil[ei] flakes\b`, "red pepper flakes", "Red pepper flakes"),
	fam(`\bcayenne(?: pepper)?\b`, "cayenne pepper", "Cayenne pepper"),
	fam(`\bsmoked paprika\b`, "smoked paprika", "Smoked paprika"),
	fam(`\bpaprika\b`, "paprika", "Paprika"),
	fam(`\bground ginger\b`, "ground ginger", "Ground ginger"),
	fam(`\bground coriander\b|\bcoriander seeds?\b`, "ground coriander", "Ground coriander"),
	fam(`\bcumin\b`, "cumin", "Cumin"),
	fam(`\bcinnamon\b`, "cinnamon", "Cinnamon"),
	fam(`\bnutmeg\b`, "nutmeg", "Nutmeg"),
	fam(`\bitalian seasoning\b`, "italian seasoning", "Italian seasoning"),
	fam(`\boregano\b`, "oregano", "Oregano"),
	fam(`\bthyme\b`, "thyme", "Thyme"),
	fam(`\brosemary\b`, "rosemary", "Rosemary"),
	fam(`\bbay lea(?:f|ves)\b`, "bay leaf", "Bay leaves"),
	fam(`\blemon pepper\b`, "lemon pepper", "Lemon pepper"),
	fam(`\bblack pepper(?:corns?)?\b|\bpeppercorns?\b`, "black pepper", "Black pepper"),
	fam(`\bvanilla(?: extract| bean)?\b`, "vanilla extract", "Vanilla extract"),

	// Cheeses.
	fam(`\bcream cheese\b`, "cream cheese", "Cream cheese"),
	fam(`\bcottage cheese\b`, "cottage cheese", "Cottage cheese"),
	fam(`\bpepper ?jack\b`, "pepper jack cheese", "Pepper jack cheese"),
	fam(`\bcheddar\b`, "cheddar cheese", "Cheddar cheese"),
	fam(`\bparmesan\b|\bparmigiano(?:[- ]reggiano)?\b|\bparm\b`, "parmesan cheese", "Parmesan cheese"),
	fam(`\bmozz?arella\b`, "mozzarella cheese", "Mozzarella cheese"),
	fam(`\bmonterey jack\b|\bjack cheese\b`, "monterey jack cheese", "Monterey jack cheese"),
	fam(`\bfeta\b`, "feta cheese", "Feta cheese"),
	fam(`\bgoat cheese\b|\bchevre\b`, "goat cheese", "Goat cheese"),
	fam(`\bricotta\b`, "ricotta cheese", "Ricotta cheese"),
	fam(`\bswiss cheese\b`, "swiss cheese", "Swiss cheese"),
	fam(`\bgruyere\b`, "gruyere cheese", "Gruyere cheese"),
	fam(`\b(?:blue|bleu) cheese\b|\bgorgonzola\b`, "blue cheese", "Blue cheese"),
	fam(`\bprovolone\b`, "provolone cheese", "Provolone cheese"),

	// Dairy and eggs.
	fam(`\bsour cream\b`, "sour cream", "Sour cream"),
	fam(`\b(?:heavy|whipping|double)(?: whipping)? cream\b`, "heavy cream", "Heavy cream"),
	fam(`\bcoconut milk\b`, "coconut milk", "Coconut milk"),
	fam(`\balmond milk\b`, "almond milk", "Almond milk"),
	fam(`\bbuttermilk\b`, "buttermilk", "Buttermilk"),
	fam(`\bevaporated milk\b`, "evaporated milk", "Evaporated milk"),
	fam(`\b(?:sweetened )?condensed milk\b`, "sweetened condensed milk", "Sweetened condensed milk"),
	fam(`\bmilk\b`, "milk", "Milk"),
	fam(`\bbutter\b`, "butter", "Butter"),
	fam(`\bgreek yog(?:h)?urt\b`, "greek yogurt", "Greek yogurt"),
	fam(`\byog(?:h)?urt\b`, "yogurt", "Yogurt"),
	fam(`\begg noodles?\b`, "egg noodles", "Egg noodles"),
	fam(`\beggs?\b|\begg (?:whites?|yolks?)\b`, "egg", "Eggs"),

	// Alliums.
	fam(`\bred onions?\b`, "red onion", "Red onions"),
	fam(`\b(?:green onions?|scallions?|spring onions?)\b`, "green onion", "Green onions"),
	fam(`\bshallots?\b`, "shallot", "Shallots"),
	fam(`\bpearl onions?\b`, "pearl onion", "Pearl onions"),
	fam(`\b(?:yellow |white |sweet |brown |vidalia )?onions?\b`, "onion", "Onions"),
	fam(`\bgarlic\b`, "garlic", "Garlic"),
	fam(`\bleeks?\b`, "leek", "Leeks"),
	fam(`\bchives\b`, "chives", "Chives"),

	// Produce.
	fam(`\b(?:cherry|grape) tomato(?:es)?\b`, "cherry tomato", "Cherry tomatoes"),
	fam(`\btomato(?:es)?\b`, "tomato", "Tomatoes"),
	fam(`\bsweet potato(?:es)?\b|\byams?\b`, "sweet potato", "Sweet potatoes"),
	fam(`\bpotato(?:es)?\b`, "potato", "Potatoes"),
	fam(`\bcarrots?\b`, "carrot", "Carrots"),
	fam(`\bcelery\b`, "celery", "Celery"),
	fam(`\bjalapenos?\b`, "jalapeno", "Jalapeno peppers"),
	fam(`\bserrano(?: peppers?| chil[ei]s?)?\b`, "serrano pepper", "Serrano peppers"),
	fam(`\bpoblano(?: peppers?)?\b`, "poblano pepper", "Poblano peppers"),
	fam(`\bbaby spinach\b|\bspinach\b`, "spinach", "Spinach"),
	fam(`\bkale\b`, "kale", "Kale"),
	fam(`\bromaine\b|\blettuce\b`, "lettuce", "Lettuce"),
	fam(`\bcabbage\b`, "cabbage", "Cabbage"),
	fam(`\bbroccoli\b`, "broccoli", "Broccoli"),
	fam(`\bcauliflower\b`, "cauliflower", "Cauliflower"),
	fam(`\bmushrooms?\b`, "mushroom", "Mushrooms"),
	fam(`\bzucchinis?\b|\bcourgettes?\b`, "zucchini", "Zucchini"),
	fam(`\bcucumbers?\b`, "cucumber", "Cucumbers"),
	fam(`\bgreen beans?\b|\bstring beans?\b`, "green beans", "Green beans"),
	fam(`\bcorn tortillas?\b`, "corn tortilla", "Corn tortillas"),
	fam(`\bflour tortillas?\b`, "flour tortilla", "Flour tortillas"),
	fam(`\bcornstarch\b|\bcorn starch\b`, "cornstarch", "Cornstarch"),
	fam(`\bcorn\b`, "corn", "Corn"),
	fam(`\bavocados?\b`, "avocado", "Avocados"),
	fam(`\blemon juice\b`, "lemon juice", "Lemon juice"),
	fam(`\blemons?\b`, "lemon", "Lemons"),
	fam(`\blime juice\b`, "lime juice", "Lime juice"),
	fam(`\blimes?\b`, "lime", "Limes"),
	fam(`\bcilantro\b|\bcoriander leaves\b`, "cilantro", "Cilantro"),
	fam(`\bparsley\b`, "parsley", "Parsley"),
	fam(`\bbasil\b`, "basil", "Basil"),
	fam(`\bmint\b`, "mint", "Mint"),
	fam(`\bdill\b`, "dill", "Dill"),
	fam(`\bginger\b`, "ginger", "Ginger"),
	fam(`\bapples?\b`, "apple", "Apples"),
	fam(`\bbananas?\b`, "banana", "Bananas"),
	fam(`\bblueberries\b|\bblueberry\b`, "blueberry", "Blueberries"),
	fam(`\bstrawberries\b|\bstrawberry\b`, "strawberry", "Strawberries"),

	// Proteins.
	fam(`\bchicken breasts?\b`, "chicken breast", "Chicken breasts"),
	fam(`\bchicken thighs?\b`, "chicken thigh", "Chicken thighs"),
	fam(`\bchicken wings?\b`, "chicken wing", "Chicken wings"),
	fam(`\bchicken\b`, "chicken", "Chicken"),
	fam(`\bground beef\b|\bhamburger meat\b`, "ground beef", "Ground beef"),
	fam(`\bground turkey\b`, "ground turkey", "Ground turkey"),
	fam(`\bground pork\b`, "ground pork", "Ground pork"),
	fam(`\b(?:beef )?stew meat\b|\bstewing beef\b`, "beef stew meat", "Beef stew meat"),
	fam(`\bbacon\b`, "bacon", "Bacon"),
	fam(`\bitalian sausages?\b`, "italian sausage", "Italian sausage"),
	fam(`\bsausages?\b`, "sausage", "Sausage"),
	fam(`\bpork chops?\b`, "pork chop", "Pork chops"),
	fam(`\bpork tenderloins?\b`, "pork tenderloin", "Pork tenderloin"),
	fam(`\bshrimps?\b|\bprawns?\b`, "shrimp", "Shrimp"),
	fam(`\bsalmon\b`, "salmon", "Salmon"),
	fam(`\btuna\b`, "tuna", "Tuna"),
	fam(`\btofu\b`, "tofu", "Tofu"),

	// Pantry staples.
	fam(`\bwhole wheat flour\b`, "whole wheat flour", "Whole wheat flour"),
	fam(`\bbread flour\b`, "bread flour", "Bread flour"),
	fam(`\bcake flour\b`, "cake flour", "Cake flour"),
	fam(`\balmond flour\b`, "almond flour", "Almond flour"),
	fam(`\bflour\b`, "all-purpose flour", "All-purpose flour"),
	fam(`\b(?:light |dark )?brown sugar\b`, "brown sugar", "Brown sugar"),
	fam(`\bpowdered sugar\b|\bconfectioners'? sugar\b|\bicing sugar\b`, "powdered sugar", "Powdered sugar"),
	fam(`\bsugar\b`, "sugar", "Sugar"),
	fam(`\bbaking soda\b|\bbicarbonate of soda\b`, "baking soda", "Baking soda"),
	fam(`\bbaking powder\b`, "baking powder", "Baking powder"),
	fam(`\byeast\b`, "yeast", "Yeast"),
	fam(`\bcocoa(?: powder)?\b`, "cocoa powder", "Cocoa powder"),
	fam(`\bchocolate chips?\b`, "chocolate chips", "Chocolate chips"),
	fam(`\bpanko\b`, "panko", "Panko"),
	fam(`\bbread ?crumbs\b`, "breadcrumbs", "Breadcrumbs"),
	fam(`\b(?:rolled |old[- ]fashioned |quick )?oats\b`, "oats", "Oats"),
	fam(`\b(?:extra[- ]virgin )?olive oil\b`, "olive oil", "Olive oil"),
	fam(`\bvegetable oil\b`, "vegetable oil", "Vegetable oil"),
	fam(`\bcanola oil\b`, "canola oil", "Canola oil"),
	fam(`\bsesame oil\b`, "sesame oil", "Sesame oil"),
	fam(`\bcoconut oil\b`, "coconut oil", "Coconut oil"),
	fam(`\bcooking spray\b|\bnon[- ]?stick spray\b`, "cooking spray", "Cooking spray"),
	fam(`\brice noodles?\b`, "rice noodles", "Rice noodles"),
	fam(`\bbrown rice\b`, "brown rice", "Brown rice"),
	fam(`\brice\b`, "rice", "Rice"),
	fam(`\bspaghetti\b`, "spaghetti", "Spaghetti"),
	fam(`\bpenne\b`, "penne", "Penne"),
	fam(`\blasagn[ae](?: noodles)?\b`, "lasagna noodles", "Lasagna noodles"),
	fam(`\bblack beans?\b`, "black beans", "Black beans"),
	fam(`\bkidney beans?\b`, "kidney beans", "Kidney beans"),
	fam(`\bpinto beans?\b`, "pinto beans", "Pinto beans"),
	fam(`\bchickpeas?\b|\bgarbanzo beans?\b`, "chickpeas", "Chickpeas"),
	fam(`\bcannellini beans?\b|\bwhite beans?\b`, "white beans", "White beans"),
	fam(`\bwalnuts?\b`, "walnuts", "Walnuts"),
	fam(`\bpecans?\b`, "pecans", "Pecans"),
	fam(`\balmonds?\b`, "almonds", "Almonds"),
	fam(`\b(?:kosher |sea |table |fine |coarse )?salt\b`, "salt", "Salt"),
}

func matchFamily(text string) (Result, bool) {
	for _, rule := range families {
		if rule.pattern.MatchString(text) {
			return Result{Key: rule.key, Display: rule.display, Attrs: Attributes{Kind: KindFamily}}, true
		}
	}
	return Result{}, false
}
