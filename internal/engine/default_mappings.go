package engine

import "github.com/mealplanr/aisle/internal/model"

// DefaultMappings returns the curated mapping dataset. Keywords are
// matched after variant expansion (base/singular/plural), so singular
// forms are enough unless an irregular spelling matters. Exclude
// keywords veto the whole rule when present in the input.
func DefaultMappings() []model.IngredientMapping {
	return []model.IngredientMapping{
		// Produce.
		{DisplayName: "Tomatoes", Category: model.CategoryProduce, Keywords: []string{"tomato", "cherry tomato", "roma tomato"}, ExcludeKeywords: []string{"tomato paste", "tomato sauce", "canned tomato"}},
		{DisplayName: "Onions", Category: model.CategoryProduce, Keywords: []string{"onion", "red onion", "yellow onion", "green onion"}, ExcludeKeywords: []string{"onion powder"}},
		{DisplayName: "Garlic", Category: model.CategoryProduce, Keywords: []string{"garlic", "garlic clove"}, ExcludeKeywords: []string{"garlic powder"}},
		{DisplayName: "Apples", Category: model.CategoryProduce, Keywords: []string{"apple"}, ExcludeKeywords: []string{"pineapple", "apple juice", "applesauce"}},
		{DisplayName: "Pineapple", Category: model.CategoryProduce, Keywords: []string{"pineapple"}},
		{DisplayName: "Bananas", Category: model.CategoryProduce, Keywords: []string{"banana"}},
		{DisplayName: "Lemons", Category: model.CategoryProduce, Keywords: []string{"lemon"}, ExcludeKeywords: []string{"lemon juice"}},
		{DisplayName: "Limes", Category: model.CategoryProduce, Keywords: []string{"lime"}},
		{DisplayName: "Carrots", Category: model.CategoryProduce, Keywords: []string{"carrot", "baby carrot"}},
		{DisplayName: "Potatoes", Category: model.CategoryProduce, Keywords: []string{"potato", "russet potato"}, ExcludeKeywords: []string{"sweet potato", "potato chip"}},
		{DisplayName: "Sweet Potatoes", Category: model.CategoryProduce, Keywords: []string{"sweet potato", "yam"}},
		{DisplayName: "Lettuce", Category: model.CategoryProduce, Keywords: []string{"lettuce", "romaine"}},
		{DisplayName: "Spinach", Category: model.CategoryProduce, Keywords: []string{"spinach", "baby spinach"}},
		{DisplayName: "Bell Peppers", Category: model.CategoryProduce, Keywords: []string{"bell pepper", "red pepper", "green pepper"}},
		{DisplayName: "Mushrooms", Category: model.CategoryProduce, Keywords: []string{"mushroom", "cremini"}},
		{DisplayName: "Avocados", Category: model.CategoryProduce, Keywords: []string{"avocado"}},
		{DisplayName: "Celery", Category: model.CategoryProduce, Keywords: []string{"celery", "celery stalk"}},
		{DisplayName: "Broccoli", Category: model.CategoryProduce, Keywords: []string{"broccoli"}},
		{DisplayName: "Corn", Category: model.CategoryProduce, Keywords: []string{"corn", "corn on the cob"}, ExcludeKeywords: []string{"cornstarch", "corn syrup", "popcorn"}},
		{DisplayName: "Peas", Category: model.CategoryProduce, Keywords: []string{"pea", "snap pea"}, ExcludeKeywords: []string{"peanut"}},
		{DisplayName: "Cilantro", Category: model.CategoryProduce, Keywords: []string{"cilantro", "coriander leaf"}},
		{DisplayName: "Eggplant", Category: model.CategoryProduce, Keywords: []string{"eggplant", "aubergine"}},
		{DisplayName: "Basil", Category: model.CategoryProduce, Keywords: []string{"basil", "basil leaf"}, ExcludeKeywords: []string{"dried basil"}},

		// Meat & seafood.
		{DisplayName: "Tuna", Category: model.CategoryMeatSeafood, Keywords: []string{"tuna", "fresh tuna", "tuna steak"}},
		{DisplayName: "Salmon", Category: model.CategoryMeatSeafood, Keywords: []string{"salmon", "fresh salmon", "salmon fillet"}},
		{DisplayName: "Shrimp", Category: model.CategoryMeatSeafood, Keywords: []string{"shrimp", "prawn"}},
		{DisplayName: "Chicken Breast", Category: model.CategoryMeatSeafood, Keywords: []string{"chicken breast", "chicken breasts"}},
		{DisplayName: "Chicken", Category: model.CategoryMeatSeafood, Keywords: []string{"chicken", "chicken thigh", "whole chicken"}, ExcludeKeywords: []string{"chicken broth", "chicken stock", "chicken bouillon"}},
		{DisplayName: "Ground Beef", Category: model.CategoryMeatSeafood, Keywords: []string{"ground beef", "minced beef"}},
		{DisplayName: "Beef", Category: model.CategoryMeatSeafood, Keywords: []string{"beef", "beef steak", "sirloin"}, ExcludeKeywords: []string{"beef broth", "beef stock"}},
		{DisplayName: "Pork", Category: model.CategoryMeatSeafood, Keywords: []string{"pork", "pork chop", "pork loin"}},
		{DisplayName: "Bacon", Category: model.CategoryMeatSeafood, Keywords: []string{"bacon"}},
		{DisplayName: "Turkey", Category: model.CategoryMeatSeafood, Keywords: []string{"turkey", "ground turkey"}},

		// Dairy & eggs.
		{DisplayName: "Milk", Category: model.CategoryDairyEggs, Keywords: []string{"milk", "whole milk", "skim milk"}, ExcludeKeywords: []string{"coconut milk", "almond milk", "oat milk", "buttermilk"}},
		{DisplayName: "Buttermilk", Category: model.CategoryDairyEggs, Keywords: []string{"buttermilk"}},
		{DisplayName: "Goat Cheese", Category: model.CategoryDairyEggs, Keywords: []string{"goat cheese", "chevre"}},
		{DisplayName: "Cream Cheese", Category: model.CategoryDairyEggs, Keywords: []string{"cream cheese"}},
		{DisplayName: "Cheddar", Category: model.CategoryDairyEggs, Keywords: []string{"cheddar", "cheddar cheese"}},
		{DisplayName: "Parmesan", Category: model.CategoryDairyEggs, Keywords: []string{"parmesan", "parmigiano"}},
		{DisplayName: "Cheese", Category: model.CategoryDairyEggs, Keywords: []string{"cheese", "shredded cheese"}},
		{DisplayName: "Eggs", Category: model.CategoryDairyEggs, Keywords: []string{"egg", "large egg"}, ExcludeKeywords: []string{"eggplant"}},
		{DisplayName: "Butter", Category: model.CategoryDairyEggs, Keywords: []string{"butter", "unsalted butter"}, ExcludeKeywords: []string{"peanut butter", "almond butter", "buttermilk", "butternut"}},
		{DisplayName: "Yogurt", Category: model.CategoryDairyEggs, Keywords: []string{"yogurt", "greek yogurt"}},
		{DisplayName: "Sour Cream", Category: model.CategoryDairyEggs, Keywords: []string{"sour cream"}},
		{DisplayName: "Heavy Cream", Category: model.CategoryDairyEggs, Keywords: []string{"heavy cream", "cream", "whipping cream"}, ExcludeKeywords: []string{"ice cream", "sour cream", "cream cheese", "creamer"}},

		// Bakery.
		{DisplayName: "Bread", Category: model.CategoryBakery, Keywords: []string{"bread", "loaf", "sourdough"}, ExcludeKeywords: []string{"breadcrumb", "bread crumb"}},
		{DisplayName: "Bagels", Category: model.CategoryBakery, Keywords: []string{"bagel"}},
		{DisplayName: "Tortillas", Category: model.CategoryBakery, Keywords: []string{"tortilla", "flour tortilla"}, ExcludeKeywords: []string{"tortilla chip"}},

		// Pantry.
		{DisplayName: "Flour", Category: model.CategoryPantry, Keywords: []string{"flour", "all purpose flour"}, ExcludeKeywords: []string{"flour tortilla"}},
		{DisplayName: "Sugar", Category: model.CategoryPantry, Keywords: []string{"sugar", "brown sugar", "powdered sugar"}},
		{DisplayName: "Rice", Category: model.CategoryPantry, Keywords: []string{"rice", "jasmine rice", "brown rice"}, ExcludeKeywords: []string{"rice vinegar"}},
		{DisplayName: "Pasta", Category: model.CategoryPantry, Keywords: []string{"pasta", "spaghetti", "penne"}},
		{DisplayName: "Olive Oil", Category: model.CategoryPantry, Keywords: []string{"olive oil", "extra virgin olive oil"}},
		{DisplayName: "Salt", Category: model.CategoryPantry, Keywords: []string{"salt", "sea salt", "kosher salt"}},
		{DisplayName: "Black Pepper", Category: model.CategoryPantry, Keywords: []string{"black pepper", "pepper", "peppercorn"}, ExcludeKeywords: []string{"bell pepper", "red pepper", "green pepper", "pepper flake"}},
		{DisplayName: "Oats", Category: model.CategoryPantry, Keywords: []string{"oats", "rolled oats", "oatmeal"}},
		{DisplayName: "Honey", Category: model.CategoryPantry, Keywords: []string{"honey"}},
		{DisplayName: "Soy Sauce", Category: model.CategoryPantry, Keywords: []string{"soy sauce"}},
		{DisplayName: "Vinegar", Category: model.CategoryPantry, Keywords: []string{"vinegar", "rice vinegar", "balsamic"}},
		{DisplayName: "Cinnamon", Category: model.CategoryPantry, Keywords: []string{"cinnamon", "ground cinnamon"}},
		{DisplayName: "Garlic Powder", Category: model.CategoryPantry, Keywords: []string{"garlic powder"}},
		{DisplayName: "Onion Powder", Category: model.CategoryPantry, Keywords: []string{"onion powder"}},
		{DisplayName: "Bay Leaves", Category: model.CategoryPantry, Keywords: []string{"bay leaf"}},
		{DisplayName: "Peanut Butter", Category: model.CategoryPantry, Keywords: []string{"peanut butter"}},
		{DisplayName: "Breadcrumbs", Category: model.CategoryPantry, Keywords: []string{"breadcrumb", "bread crumb", "panko"}},

		// Canned & jarred.
		{DisplayName: "Canned Tuna", Category: model.CategoryCanned, Keywords: []string{"canned tuna", "tinned tuna"}},
		{DisplayName: "Canned Tomatoes", Category: model.CategoryCanned, Keywords: []string{"canned tomato", "crushed tomato", "diced tomato"}},
		{DisplayName: "Tomato Paste", Category: model.CategoryCanned, Keywords: []string{"tomato paste", "tomato sauce"}},
		{DisplayName: "Coconut Milk", Category: model.CategoryCanned, Keywords: []string{"coconut milk", "coconut cream"}},
		{DisplayName: "Black Beans", Category: model.CategoryCanned, Keywords: []string{"black bean", "canned black bean"}},
		{DisplayName: "Chickpeas", Category: model.CategoryCanned, Keywords: []string{"chickpea", "garbanzo bean"}},
		{DisplayName: "Chicken Broth", Category: model.CategoryCanned, Keywords: []string{"chicken broth", "chicken stock", "broth"}},

		// Frozen.
		{DisplayName: "Frozen Pizza", Category: model.CategoryFrozen, Keywords: []string{"frozen pizza"}},
		{DisplayName: "Ice Cream", Category: model.CategoryFrozen, Keywords: []string{"ice cream", "gelato"}},

		// Beverages.
		{DisplayName: "Coffee", Category: model.CategoryBeverages, Keywords: []string{"coffee", "ground coffee", "coffee bean"}},
		{DisplayName: "Tea", Category: model.CategoryBeverages, Keywords: []string{"tea", "green tea", "tea bag"}},
		{DisplayName: "Orange Juice", Category: model.CategoryBeverages, Keywords: []string{"orange juice"}},
		{DisplayName: "Apple Juice", Category: model.CategoryBeverages, Keywords: []string{"apple juice"}},
		{DisplayName: "Sparkling Water", Category: model.CategoryBeverages, Keywords: []string{"sparkling water", "soda water", "seltzer"}},

		// Snacks.
		{DisplayName: "Tortilla Chips", Category: model.CategorySnacks, Keywords: []string{"tortilla chip", "corn chip"}},
		{DisplayName: "Potato Chips", Category: model.CategorySnacks, Keywords: []string{"potato chip", "crisps"}},
		{DisplayName: "Crackers", Category: model.CategorySnacks, Keywords: []string{"cracker"}},
		{DisplayName: "Popcorn", Category: model.CategorySnacks, Keywords: []string{"popcorn"}},
		{DisplayName: "Chocolate", Category: model.CategorySnacks, Keywords: []string{"chocolate", "dark chocolate", "chocolate chip"}},
		{DisplayName: "Granola Bars", Category: model.CategorySnacks, Keywords: []string{"granola bar"}},
	}
}
