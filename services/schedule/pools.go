package schedule

// mealOption is one entry in the meal pool.
type mealOption struct {
	Title       string
	Calories    int
	Description string
}

// workoutOption is one entry in a workout pool.
type workoutOption struct {
	Type     string
	Duration string
}

var mealOptions = []mealOption{
	{Title: "Greek Yogurt Bowl", Calories: 380, Description: "with berries and granola"},
	{Title: "Avocado Toast", Calories: 420, Description: "with poached eggs"},
	{Title: "Protein Smoothie", Calories: 340, Description: "banana, spinach, protein powder"},
	{Title: "Oatmeal", Calories: 310, Description: "with nuts and honey"},
	{Title: "Grilled Chicken Salad", Calories: 520, Description: "with mixed greens"},
	{Title: "Salmon Bowl", Calories: 580, Description: "with quinoa and vegetables"},
	{Title: "Turkey Wrap", Calories: 460, Description: "whole wheat with veggies"},
	{Title: "Buddha Bowl", Calories: 490, Description: "chickpeas, sweet potato, tahini"},
	{Title: "Grilled Salmon", Calories: 640, Description: "with roasted vegetables"},
	{Title: "Chicken Stir Fry", Calories: 610, Description: "with brown rice"},
	{Title: "Veggie Pasta", Calories: 560, Description: "whole wheat with marinara"},
	{Title: "Lean Beef Tacos", Calories: 590, Description: "with black beans"},
	{Title: "Protein Bar", Calories: 180, Description: "chocolate peanut butter"},
	{Title: "Apple with Almond Butter", Calories: 200, Description: "2 tbsp almond butter"},
	{Title: "Trail Mix", Calories: 220, Description: "nuts and dried fruit"},
	{Title: "Cottage Cheese", Calories: 160, Description: "with pineapple"},
}

var workoutOptions = []workoutOption{
	{Type: "HIIT Training", Duration: "45 min"},
	{Type: "Strength Training", Duration: "60 min"},
	{Type: "Yoga", Duration: "50 min"},
	{Type: "Running", Duration: "40 min"},
	{Type: "Swimming", Duration: "45 min"},
	{Type: "Cycling", Duration: "50 min"},
	{Type: "Pilates", Duration: "45 min"},
	{Type: "CrossFit", Duration: "60 min"},
	{Type: "Boxing", Duration: "50 min"},
	{Type: "Dance Cardio", Duration: "45 min"},
}

var lightActivityOptions = []workoutOption{
	{Type: "Morning Stretch", Duration: "15 min"},
	{Type: "Evening Walk", Duration: "30 min"},
	{Type: "Mobility Work", Duration: "20 min"},
	{Type: "Light Yoga", Duration: "25 min"},
}

// Calorie bands per meal slot.
var (
	breakfastBand = [2]int{300, 450}
	lunchBand     = [2]int{450, 600}
	snackBand     = [2]int{150, 250}
	dinnerBand    = [2]int{550, 700}
)
