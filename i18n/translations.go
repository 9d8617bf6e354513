package i18n

type entry struct {
	en string
	ur string
}

var translations = map[string]entry{
	"appName":    {"Rozgaar GB", "روزگار جی بی"},
	"appTagline": {"Find Local Workers", "مقامی کاریگر تلاش کریں"},

	// Navigation
	"home":      {"Home", "ہوم"},
	"workers":   {"Workers", "کاریگر"},
	"login":     {"Login", "لاگ ان"},
	"register":  {"Register", "رجسٹر"},
	"logout":    {"Logout", "لاگ آؤٹ"},
	"myProfile": {"My Profile", "میری پروفائل"},
	"blogs":     {"Blogs", "بلاگز"},
	"contact":   {"Contact Us", "ہم سے رابطہ کریں"},
	"feedback":  {"Feedback", "رائے"},

	// Categories
	"categories":     {"Categories", "زمرے"},
	"allCategories":  {"All Categories", "تمام زمرے"},
	"plumber":        {"Plumber", "پلمبر"},
	"electrician":    {"Electrician", "الیکٹریشن"},
	"painter":        {"Painter", "پینٹر"},
	"carpenter":      {"Carpenter", "بڑھئی"},
	"mason":          {"Mason", "راج مستری"},
	"laborer":        {"Laborer", "مزدور"},
	"maid":           {"Maid", "گھریلو ملازمہ"},
	"cook":           {"Cook", "باورچی"},
	"driver":         {"Driver", "ڈرائیور"},
	"gardener":       {"Gardener", "مالی"},
	"security_guard": {"Security Guard", "چوکیدار"},
	"other":          {"Other", "دیگر"},

	// Locations
	"selectLocation": {"Select Location", "مقام منتخب کریں"},
	"allLocations":   {"All Locations", "تمام مقامات"},
	"gilgit":         {"Gilgit", "گلگت"},
	"skardu":         {"Skardu", "سکردو"},
	"hunza":          {"Hunza", "ہنزہ"},
	"nagar":          {"Nagar", "نگر"},
	"ghizer":         {"Ghizer", "غذر"},
	"diamer":         {"Diamer", "دیامر"},
	"astore":         {"Astore", "استور"},
	"ghanche":        {"Ghanche", "گھانچے"},
	"shigar":         {"Shigar", "شگر"},
	"kharmang":       {"Kharmang", "کھرمنگ"},

	// Worker profile
	"hourlyRate":   {"Hourly Rate", "فی گھنٹہ"},
	"dailyRate":    {"Daily Rate", "فی دن"},
	"perHour":      {"/hour", "/گھنٹہ"},
	"perDay":       {"/day", "/دن"},
	"rs":           {"Rs.", "روپے"},
	"callNow":      {"Call Now", "ابھی کال کریں"},
	"whatsapp":     {"WhatsApp", "واٹس ایپ"},
	"reviews":      {"Reviews", "جائزے"},
	"noReviews":    {"No reviews yet", "ابھی کوئی جائزہ نہیں"},
	"writeReview":  {"Write a Review", "جائزہ لکھیں"},
	"available":    {"Available", "دستیاب"},
	"notAvailable": {"Not Available", "دستیاب نہیں"},

	// Forms
	"fullName":        {"Full Name", "پورا نام"},
	"phone":           {"Phone Number", "فون نمبر"},
	"whatsappNumber":  {"WhatsApp Number", "واٹس ایپ نمبر"},
	"email":           {"Email", "ای میل"},
	"password":        {"Password", "پاس ورڈ"},
	"confirmPassword": {"Confirm Password", "پاس ورڈ دوبارہ لکھیں"},
	"category":        {"Service Category", "سروس زمرہ"},
	"location":        {"Your Location", "آپ کا مقام"},
	"areasServed":     {"Areas You Serve", "جن علاقوں میں آپ کام کرتے ہیں"},
	"description":     {"About Your Work", "اپنے کام کے بارے میں"},
	"profilePhoto":    {"Profile Photo", "پروفائل فوٹو"},
	"uploadPhoto":     {"Upload Photo", "فوٹو اپلوڈ کریں"},
	"save":            {"Save", "محفوظ کریں"},
	"submit":          {"Submit", "بھیجیں"},
	"cancel":          {"Cancel", "منسوخ"},

	// Review form
	"yourName":          {"Your Name", "آپ کا نام"},
	"yourPhone":         {"Your Phone (Optional)", "آپ کا فون (اختیاری)"},
	"rating":            {"Rating", "درجہ بندی"},
	"yourReview":        {"Your Review", "آپ کا جائزہ"},
	"reviewPlaceholder": {"How was your experience?", "آپ کا تجربہ کیسا رہا؟"},
	"submitReview":      {"Submit Review", "جائزہ بھیجیں"},
	"reviewSuccess":     {"Review submitted successfully!", "جائزہ کامیابی سے بھیج دیا گیا!"},

	// Auth
	"loginTitle":      {"Worker Login", "کاریگر لاگ ان"},
	"registerTitle":   {"Worker Registration", "کاریگر رجسٹریشن"},
	"noAccount":       {"Don't have an account?", "اکاؤنٹ نہیں ہے؟"},
	"haveAccount":     {"Already have an account?", "پہلے سے اکاؤنٹ ہے؟"},
	"signupSuccess":   {"Account created! Please complete your profile.", "اکاؤنٹ بن گیا! براہ کرم اپنی پروفائل مکمل کریں۔"},
	"loginSuccess":    {"Login successful!", "لاگ ان کامیاب!"},
	"loginError":      {"Login failed. Check your email and password.", "لاگ ان ناکام۔ ای میل اور پاس ورڈ چیک کریں۔"},
	"logoutSuccess":   {"Logged out", "لاگ آؤٹ ہو گیا"},
	"emailRegistered": {"Email already registered. Please login.", "ای میل پہلے سے رجسٹرڈ ہے۔ براہ کرم لاگ ان کریں۔"},
	"sessionExpired":  {"Your session has expired. Please login again.", "آپ کا سیشن ختم ہو گیا ہے۔ براہ کرم دوبارہ لاگ ان کریں۔"},
	"loginRequired":   {"Please login to continue", "جاری رکھنے کے لیے براہ کرم لاگ ان کریں"},
	"accessDenied":    {"Access denied. Admin only.", "رسائی مسترد۔ صرف ایڈمن۔"},

	// Validation
	"invalidEmail":      {"Please enter a valid email", "براہ کرم درست ای میل درج کریں"},
	"passwordTooShort":  {"Password must be at least 6 characters", "پاس ورڈ کم از کم 6 حروف کا ہونا چاہیے"},
	"passwordTooLong":   {"Password must be at most 100 characters", "پاس ورڈ زیادہ سے زیادہ 100 حروف کا ہو سکتا ہے"},
	"passwordMismatch":  {"Passwords do not match", "پاس ورڈ مماثل نہیں ہیں"},
	"nameRequired":      {"Please enter your name", "براہ کرم اپنا نام درج کریں"},
	"ratingRequired":    {"Please select a rating from 1 to 5", "براہ کرم 1 سے 5 تک درجہ بندی منتخب کریں"},
	"fieldRequired":     {"This field is required", "یہ خانہ ضروری ہے"},
	"fieldTooLong":      {"This entry is too long", "یہ اندراج بہت طویل ہے"},
	"invalidPhone":      {"Please enter a valid phone number", "براہ کرم درست فون نمبر درج کریں"},
	"selectCatLocation": {"Please select category and location", "براہ کرم زمرہ اور مقام منتخب کریں"},
	"invalidCategory":   {"Unknown service category", "نامعلوم سروس زمرہ"},
	"invalidLocation":   {"Unknown location", "نامعلوم مقام"},
	"invalidRate":       {"Rates cannot be negative", "نرخ منفی نہیں ہو سکتے"},
	"invalidRequest":    {"Invalid request", "غلط درخواست"},
	"invalidImage":      {"Please upload a JPG, PNG or WEBP image up to 5 MB", "براہ کرم 5 ایم بی تک کی JPG، PNG یا WEBP تصویر اپلوڈ کریں"},
	"uploadUnavailable": {"Photo upload is not available right now", "فوٹو اپلوڈ فی الحال دستیاب نہیں"},
	"validationFailed":  {"Please correct the highlighted fields", "براہ کرم نشان زدہ خانے درست کریں"},

	// Messages
	"noWorkersFound":      {"No workers found", "کوئی کاریگر نہیں ملا"},
	"tryDifferentFilters": {"Try different filters", "مختلف فلٹرز آزمائیں"},
	"loading":             {"Loading...", "لوڈ ہو رہا ہے..."},
	"error":               {"Something went wrong", "کچھ غلط ہو گیا"},
	"notFound":            {"Not found", "نہیں ملا"},
	"tooManyRequests":     {"Too many requests. Please try again later.", "بہت زیادہ درخواستیں۔ براہ کرم بعد میں کوشش کریں۔"},
	"searchPlaceholder":   {"Search workers...", "کاریگر تلاش کریں..."},

	// Profile page
	"editProfile":     {"Edit Profile", "پروفائل میں ترمیم"},
	"profileUpdated":  {"Profile updated successfully!", "پروفائل کامیابی سے اپڈیٹ ہو گئی!"},
	"completeProfile": {"Complete Your Profile", "اپنی پروفائل مکمل کریں"},
	"photoUploaded":   {"Photo uploaded", "فوٹو اپلوڈ ہو گئی"},

	// Blogs
	"addBlog":     {"Add Blog", "بلاگ شامل کریں"},
	"createBlog":  {"Create Blog", "بلاگ بنائیں"},
	"updateBlog":  {"Update Blog", "بلاگ اپڈیٹ کریں"},
	"blogCreated": {"Blog created successfully!", "بلاگ کامیابی سے بن گیا!"},
	"blogUpdated": {"Blog updated successfully!", "بلاگ کامیابی سے اپڈیٹ ہو گیا!"},
	"noBlogs":     {"No blogs yet", "ابھی کوئی بلاگ نہیں"},

	// Contact and feedback
	"sendMessage":       {"Send Message", "پیغام بھیجیں"},
	"querySubmitted":    {"Your message has been sent. We will get back to you soon.", "آپ کا پیغام بھیج دیا گیا ہے۔ ہم جلد آپ سے رابطہ کریں گے۔"},
	"shareFeedback":     {"Share Your Feedback", "اپنی رائے دیں"},
	"submitFeedback":    {"Submit Feedback", "رائے بھیجیں"},
	"feedbackSubmitted": {"Thank you for your feedback!", "آپ کی رائے کا شکریہ!"},

	// Footer
	"madeWith": {"Made for Gilgit-Baltistan", "گلگت بلتستان کے لیے بنایا گیا"},
}
