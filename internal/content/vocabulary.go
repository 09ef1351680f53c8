package content

// vocabularies holds the five-item vocabulary sets, keyed by skill, then
// level, then language. Each course carries the same meaning per slot so
// translations line up across languages.
var vocabularies = map[string]map[int]map[string]VocabularySet{
	"basics_1": {
		1: {
			"hindi":   {Word1: "नमस्ते", Word2: "धन्यवाद", Word3: "हाँ", Word4: "नहीं", Word5: "अलविदा"},
			"bengali": {Word1: "নমস্কার", Word2: "ধন্যবাদ", Word3: "হ্যাঁ", Word4: "না", Word5: "বিদায়"},
			"telugu":  {Word1: "నమస్కారం", Word2: "ధన్యవాదాలు", Word3: "అవును", Word4: "కాదు", Word5: "సెలవు"},
			"kannada": {Word1: "ನಮಸ್ಕಾರ", Word2: "ಧನ್ಯವಾದಗಳು", Word3: "ಹೌದು", Word4: "ಅಲ್ಲ", Word5: "ವಿದಾಯ"},
			"tamil":   {Word1: "வணக்கம்", Word2: "நன்றி", Word3: "ஆம்", Word4: "இல்லை", Word5: "போயிட்டு வரேன்"},
			"english": {Word1: "Hello", Word2: "Thank you", Word3: "Yes", Word4: "No", Word5: "Goodbye"},
		},
		2: {
			"hindi":   {Word1: "कैसे हो", Word2: "ठीक हूँ", Word3: "माफ करें", Word4: "कृपया", Word5: "स्वागत"},
			"bengali": {Word1: "কেমন আছেন", Word2: "ভালো", Word3: "ক্ষমা করুন", Word4: "অনুগ্রহ করে", Word5: "স্বাগতম"},
			"telugu":  {Word1: "ఎలా ఉన్నారు", Word2: "బాగున్నాను", Word3: "క్షమించండి", Word4: "దయచేసి", Word5: "స్వాగతం"},
			"kannada": {Word1: "ಹೇಗೆ ಇದ್ದೀರ", Word2: "ಚೆನ್ನಾಗಿದ್ದೇನೆ", Word3: "ಕ್ಷಮಿಸಿ", Word4: "ದಯವಿಟ್ಟು", Word5: "ಸ್ವಾಗತ"},
			"tamil":   {Word1: "எப்படி இருக்கீங்க", Word2: "நன்றாக இருக்கிறேன்", Word3: "மன்னிக்கவும்", Word4: "தயவு செய்து", Word5: "வரவேற்கிறோம்"},
			"english": {Word1: "How are you", Word2: "I am fine", Word3: "Sorry", Word4: "Please", Word5: "Welcome"},
		},
		3: {
			"hindi":   {Word1: "मेरा नाम", Word2: "आपका नाम", Word3: "मिलकर खुशी हुई", Word4: "फिर मिलेंगे", Word5: "शुभ रात्रि"},
			"bengali": {Word1: "আমার নাম", Word2: "আপনার নাম", Word3: "দেখে ভালো লাগল", Word4: "আবার দেখা হবে", Word5: "শুভ রাত্রি"},
			"telugu":  {Word1: "నా పేరు", Word2: "మీ పేరు", Word3: "మిమ్మల్ని కలవడం ఆనందంగా ఉంది", Word4: "మళ్లీ కలుద్దాం", Word5: "శుభ రాత్రి"},
			"kannada": {Word1: "ನನ್ನ ಹೆಸರು", Word2: "ನಿಮ್ಮ ಹೆಸರು", Word3: "ನಿಮ್ಮನ್ನು ಭೇಟಿಯಾಗಲು ಸಂತೋಷ", Word4: "ಮತ್ತೆ ಭೇಟಿಯಾಗೋಣ", Word5: "ಶುಭ ರಾತ್ರಿ"},
			"tamil":   {Word1: "என் பெயர்", Word2: "உங்கள் பெயர்", Word3: "உங்களை சந்தித்ததில் மகிழ்ச்சி", Word4: "மீண்டும் சந்திப்போம்", Word5: "நல்ல இரவு"},
			"english": {Word1: "My name", Word2: "Your name", Word3: "Nice to meet you", Word4: "See you again", Word5: "Good night"},
		},
		4: {
			"hindi":   {Word1: "शुभ प्रभात", Word2: "शुभ दोपहर", Word3: "शुभ संध्या", Word4: "कहाँ", Word5: "कब"},
			"bengali": {Word1: "সুপ্রভাত", Word2: "শুভ দুপুর", Word3: "শুভ সন্ধ্যা", Word4: "কোথায়", Word5: "কখন"},
			"telugu":  {Word1: "శుభోదయం", Word2: "శుభ మధ్యాహ్నం", Word3: "శుభ సాయంత్రం", Word4: "ఎక్కడ", Word5: "ఎప్పుడు"},
			"kannada": {Word1: "ಶುಭೋದಯ", Word2: "ಶುಭ ಮಧ್ಯಾಹ್ನ", Word3: "ಶುಭ ಸಂಜೆ", Word4: "ಎಲ್ಲಿ", Word5: "ಎಂದು"},
			"tamil":   {Word1: "காலை வணக்கம்", Word2: "மதிய வணக்கம்", Word3: "மாலை வணக்கம்", Word4: "எங்கே", Word5: "எப்போது"},
			"english": {Word1: "Good morning", Word2: "Good afternoon", Word3: "Good evening", Word4: "Where", Word5: "When"},
		},
		5: {
			"hindi":   {Word1: "कौन", Word2: "क्या", Word3: "क्यों", Word4: "कैसे", Word5: "कितना"},
			"bengali": {Word1: "কে", Word2: "কী", Word3: "কেন", Word4: "কীভাবে", Word5: "কত"},
			"telugu":  {Word1: "ఎవరు", Word2: "ఏమి", Word3: "ఎందుకు", Word4: "ఎలా", Word5: "ఎంత"},
			"kannada": {Word1: "ಯಾರು", Word2: "ಏನು", Word3: "ಏಕೆ", Word4: "ಹೇಗೆ", Word5: "ಎಷ್ಟು"},
			"tamil":   {Word1: "யார்", Word2: "என்ன", Word3: "ஏன்", Word4: "எப்படி", Word5: "எவ்வளவு"},
			"english": {Word1: "Who", Word2: "What", Word3: "Why", Word4: "How", Word5: "How much"},
		},
	},
	"basics_2": {
		1: {
			"hindi":   {Word1: "मुझे", Word2: "आपको", Word3: "हमें", Word4: "उन्हें", Word5: "इसे"},
			"bengali": {Word1: "আমাকে", Word2: "আপনাকে", Word3: "আমাদের", Word4: "তাদের", Word5: "এটা"},
			"telugu":  {Word1: "నాకు", Word2: "మీకు", Word3: "మాకు", Word4: "వారికి", Word5: "దీన్ని"},
			"kannada": {Word1: "ನನಗೆ", Word2: "ನಿಮಗೆ", Word3: "ನಮಗೆ", Word4: "ಅವರಿಗೆ", Word5: "ಇದನ್ನು"},
			"tamil":   {Word1: "எனக்கு", Word2: "உங்களுக்கு", Word3: "எங்களுக்கு", Word4: "அவர்களுக்கு", Word5: "இதை"},
			"english": {Word1: "To me", Word2: "To you", Word3: "To us", Word4: "To them", Word5: "This"},
		},
		2: {
			"hindi":   {Word1: "यहाँ", Word2: "वहाँ", Word3: "यह", Word4: "वह", Word5: "कौन सा"},
			"bengali": {Word1: "এখানে", Word2: "সেখানে", Word3: "এটা", Word4: "সেটা", Word5: "কোনটি"},
			"telugu":  {Word1: "ఇక్కడ", Word2: "అక్కడ", Word3: "ఇది", Word4: "అది", Word5: "ఏది"},
			"kannada": {Word1: "ಇಲ್ಲಿ", Word2: "ಅಲ್ಲಿ", Word3: "ಇದು", Word4: "ಅದು", Word5: "ಏನು"},
			"tamil":   {Word1: "இங்கே", Word2: "அங்கே", Word3: "இது", Word4: "அது", Word5: "எது"},
			"english": {Word1: "Here", Word2: "There", Word3: "This", Word4: "That", Word5: "Which"},
		},
		3: {
			"hindi":   {Word1: "मैं", Word2: "तुम", Word3: "वह", Word4: "हम", Word5: "वे"},
			"bengali": {Word1: "আমি", Word2: "তুমি", Word3: "সে", Word4: "আমরা", Word5: "তারা"},
			"telugu":  {Word1: "నేను", Word2: "నీవు", Word3: "అతను", Word4: "మేము", Word5: "వారు"},
			"kannada": {Word1: "ನಾನು", Word2: "ನೀನು", Word3: "ಅವನು", Word4: "ನಾವು", Word5: "ಅವರು"},
			"tamil":   {Word1: "நான்", Word2: "நீ", Word3: "அவன்", Word4: "நாங்கள்", Word5: "அவர்கள்"},
			"english": {Word1: "I", Word2: "You", Word3: "He/She", Word4: "We", Word5: "They"},
		},
		4: {
			"hindi":   {Word1: "होना", Word2: "करना", Word3: "जाना", Word4: "आना", Word5: "देखना"},
			"bengali": {Word1: "হওয়া", Word2: "করা", Word3: "যাওয়া", Word4: "আসা", Word5: "দেখা"},
			"telugu":  {Word1: "అవ్వడం", Word2: "చేయడం", Word3: "వెళ్ళడం", Word4: "వచ్చడం", Word5: "చూడడం"},
			"kannada": {Word1: "ಇರುವುದು", Word2: "ಮಾಡುವುದು", Word3: "ಹೋಗುವುದು", Word4: "ಬರುವುದು", Word5: "ನೋಡುವುದು"},
			"tamil":   {Word1: "இருக்க", Word2: "செய்ய", Word3: "செல்ல", Word4: "வா", Word5: "பார்"},
			"english": {Word1: "To be", Word2: "To do", Word3: "To go", Word4: "To come", Word5: "To see"},
		},
		5: {
			"hindi":   {Word1: "खाना", Word2: "पीना", Word3: "सोना", Word4: "उठना", Word5: "बैठना"},
			"bengali": {Word1: "খাওয়া", Word2: "পান করা", Word3: "ঘুমানো", Word4: "ওঠা", Word5: "বসা"},
			"telugu":  {Word1: "తినడం", Word2: "తాగడం", Word3: "నిద్రించడం", Word4: "లేవడం", Word5: "కూర్చోవడం"},
			"kannada": {Word1: "ತಿನ್ನುವುದು", Word2: "ಕುಡಿಯುವುದು", Word3: "ನಿದ್ರೆ", Word4: "ಎದ್ದೇಳುವುದು", Word5: "ಕುಳಿತುಕೊಳ್ಳುವುದು"},
			"tamil":   {Word1: "சாப்பிட", Word2: "குடி", Word3: "தூங்க", Word4: "எழுந்திரு", Word5: "உட்கார்"},
			"english": {Word1: "To eat", Word2: "To drink", Word3: "To sleep", Word4: "To wake up", Word5: "To sit"},
		},
	},
	"numbers": {
		1: {
			"hindi":   {Word1: "एक", Word2: "दो", Word3: "तीन", Word4: "चार", Word5: "पाँच"},
			"bengali": {Word1: "এক", Word2: "দুই", Word3: "তিন", Word4: "চার", Word5: "পাঁচ"},
			"telugu":  {Word1: "ఒకటి", Word2: "రెండు", Word3: "మూడు", Word4: "నాలుగు", Word5: "ఐదు"},
			"kannada": {Word1: "ಒಂದು", Word2: "ಎರಡು", Word3: "ಮೂರು", Word4: "ನಾಲ್ಕು", Word5: "ಐದು"},
			"tamil":   {Word1: "ஒன்று", Word2: "இரண்டு", Word3: "மூன்று", Word4: "நான்கு", Word5: "ஐந்து"},
			"english": {Word1: "One", Word2: "Two", Word3: "Three", Word4: "Four", Word5: "Five"},
		},
		2: {
			"hindi":   {Word1: "छह", Word2: "सात", Word3: "आठ", Word4: "नौ", Word5: "दस"},
			"bengali": {Word1: "ছয়", Word2: "সাত", Word3: "আট", Word4: "নয়", Word5: "দশ"},
			"telugu":  {Word1: "ఆరు", Word2: "ఏడు", Word3: "ఎనిమిది", Word4: "తొమ్మిది", Word5: "పది"},
			"kannada": {Word1: "ಆರು", Word2: "ಏಳು", Word3: "ಎಂಟು", Word4: "ಒಂಬತ್ತು", Word5: "ಹತ್ತು"},
			"tamil":   {Word1: "ஆறு", Word2: "ஏழு", Word3: "எட்டு", Word4: "ஒன்பது", Word5: "பத்து"},
			"english": {Word1: "Six", Word2: "Seven", Word3: "Eight", Word4: "Nine", Word5: "Ten"},
		},
		3: {
			"hindi":   {Word1: "ग्यारह", Word2: "बीस", Word3: "तीस", Word4: "चालीस", Word5: "पचास"},
			"bengali": {Word1: "এগারো", Word2: "বিশ", Word3: "তিরিশ", Word4: "চল্লিশ", Word5: "পঞ্চাশ"},
			"telugu":  {Word1: "పదకొండు", Word2: "ఇరవై", Word3: "ముప్పై", Word4: "నలభై", Word5: "యాభై"},
			"kannada": {Word1: "ಹನ್ನೊಂದು", Word2: "ಇಪ್ಪತ್ತು", Word3: "ಮೂವತ್ತು", Word4: "ನಲವತ್ತು", Word5: "ಐವತ್ತು"},
			"tamil":   {Word1: "பதினொன்று", Word2: "இருபது", Word3: "முப்பது", Word4: "நாற்பது", Word5: "ஐம்பது"},
			"english": {Word1: "Eleven", Word2: "Twenty", Word3: "Thirty", Word4: "Forty", Word5: "Fifty"},
		},
		4: {
			"hindi":   {Word1: "साठ", Word2: "सत्तर", Word3: "अस्सी", Word4: "नब्बे", Word5: "सौ"},
			"bengali": {Word1: "ষাট", Word2: "সত্তর", Word3: "আশি", Word4: "নব্বই", Word5: "একশ"},
			"telugu":  {Word1: "అరవై", Word2: "డెబ్బై", Word3: "ఎనభై", Word4: "తొంభై", Word5: "వంద"},
			"kannada": {Word1: "ಅರವತ್ತು", Word2: "ಎಪ್ಪತ್ತು", Word3: "ಎಂಬತ್ತು", Word4: "ತೊಂಬತ್ತು", Word5: "ನೂರು"},
			"tamil":   {Word1: "அறுபது", Word2: "எழுபது", Word3: "எண்பது", Word4: "தொண்ணூறு", Word5: "நூறு"},
			"english": {Word1: "Sixty", Word2: "Seventy", Word3: "Eighty", Word4: "Ninety", Word5: "Hundred"},
		},
		5: {
			"hindi":   {Word1: "हज़ार", Word2: "लाख", Word3: "करोड़", Word4: "पहला", Word5: "दूसरा"},
			"bengali": {Word1: "হাজার", Word2: "লাখ", Word3: "কোটি", Word4: "প্রথম", Word5: "দ্বিতীয়"},
			"telugu":  {Word1: "వెయ్యి", Word2: "లక్ష", Word3: "కోటి", Word4: "మొదటి", Word5: "రెండవ"},
			"kannada": {Word1: "ಸಾವಿರ", Word2: "ಲಕ್ಷ", Word3: "ಕೋಟಿ", Word4: "ಮೊದಲನೆಯ", Word5: "ಎರಡನೆಯ"},
			"tamil":   {Word1: "ஆயிரம்", Word2: "லட்சம்", Word3: "கோடி", Word4: "முதல்", Word5: "இரண்டாவது"},
			"english": {Word1: "Thousand", Word2: "Lakh", Word3: "Crore", Word4: "First", Word5: "Second"},
		},
	},
	"family": {
		1: {
			"hindi":   {Word1: "पिता", Word2: "माता", Word3: "भाई", Word4: "बहन", Word5: "बेटा"},
			"bengali": {Word1: "বাবা", Word2: "মা", Word3: "ভাই", Word4: "বোন", Word5: "ছেলে"},
			"telugu":  {Word1: "తండ్రి", Word2: "తల్లి", Word3: "సోదరుడు", Word4: "సోదరి", Word5: "కుమారుడు"},
			"kannada": {Word1: "ತಂದೆ", Word2: "ತಾಯಿ", Word3: "ಸಹೋದರ", Word4: "ಸಹೋದರಿ", Word5: "ಮಗ"},
			"tamil":   {Word1: "தந்தை", Word2: "தாய்", Word3: "சகோதரன்", Word4: "சகோதரி", Word5: "மகன்"},
			"english": {Word1: "Father", Word2: "Mother", Word3: "Brother", Word4: "Sister", Word5: "Son"},
		},
		2: {
			"hindi":   {Word1: "बेटी", Word2: "दादा", Word3: "दादी", Word4: "नाना", Word5: "नानी"},
			"bengali": {Word1: "মেয়ে", Word2: "দাদা", Word3: "দাদি", Word4: "নানা", Word5: "নানী"},
			"telugu":  {Word1: "కుమార్తె", Word2: "తాత", Word3: "అమ్మమ్మ", Word4: "నాన్న", Word5: "నాన్నమ్మ"},
			"kannada": {Word1: "ಮಗಳು", Word2: "ಅಜ್ಜ", Word3: "ಅಜ್ಜಿ", Word4: "ಅಜ್ಜ", Word5: "ಅಜ್ಜಿ"},
			"tamil":   {Word1: "மகள்", Word2: "தாத்தா", Word3: "பாட்டி", Word4: "தாத்தா", Word5: "பாட்டி"},
			"english": {Word1: "Daughter", Word2: "Grandfather (paternal)", Word3: "Grandmother (paternal)", Word4: "Grandfather (maternal)", Word5: "Grandmother (maternal)"},
		},
		3: {
			"hindi":   {Word1: "चाचा", Word2: "चाची", Word3: "मामा", Word4: "मामी", Word5: "भतीजा"},
			"bengali": {Word1: "কাকা", Word2: "কাকি", Word3: "মামা", Word4: "মামি", Word5: "ভাইপো"},
			"telugu":  {Word1: "పిన్ని", Word2: "పిన్ని", Word3: "మామ", Word4: "మామి", Word5: "మేనల్లుడు"},
			"kannada": {Word1: "ಚಿಕ್ಕಪ್ಪ", Word2: "ಚಿಕ್ಕಮ್ಮ", Word3: "ಮಾವ", Word4: "ಮಾವಿ", Word5: "ಮೊಮ್ಮಗ"},
			"tamil":   {Word1: "சித்தப்பா", Word2: "சித்தி", Word3: "மாமா", Word4: "மாமி", Word5: "மருமகன்"},
			"english": {Word1: "Uncle (paternal)", Word2: "Aunt (paternal)", Word3: "Uncle (maternal)", Word4: "Aunt (maternal)", Word5: "Nephew"},
		},
		4: {
			"hindi":   {Word1: "भतीजी", Word2: "भांजा", Word3: "भांजी", Word4: "चचेरा भाई", Word5: "चचेरी बहन"},
			"bengali": {Word1: "ভাইঝি", Word2: "ভাগ্নে", Word3: "ভাগ্নি", Word4: "চাচাতো ভাই", Word5: "চাচাতো বোন"},
			"telugu":  {Word1: "మేనకోడలు", Word2: "మేనల్లుడు", Word3: "మేనకోడలు", Word4: "సోదరుడు", Word5: "సోదరి"},
			"kannada": {Word1: "ಮೊಮ್ಮಗಳು", Word2: "ಮೊಮ್ಮಗ", Word3: "ಮೊಮ್ಮಗಳು", Word4: "ಸಹೋದರ", Word5: "ಸಹೋದರಿ"},
			"tamil":   {Word1: "மருமகள்", Word2: "மருமகன்", Word3: "மருமகள்", Word4: "சகோதரன்", Word5: "சகோதரி"},
			"english": {Word1: "Niece", Word2: "Nephew", Word3: "Niece", Word4: "Cousin (male)", Word5: "Cousin (female)"},
		},
		5: {
			"hindi":   {Word1: "पति", Word2: "पत्नी", Word3: "ससुर", Word4: "सास", Word5: "साला"},
			"bengali": {Word1: "স্বামী", Word2: "স্ত্রী", Word3: "শ্বশুর", Word4: "শাশুড়ি", Word5: "শালা"},
			"telugu":  {Word1: "భర్త", Word2: "భార్య", Word3: "మామ", Word4: "అత్త", Word5: "బావ"},
			"kannada": {Word1: "ಗಂಡ", Word2: "ಹೆಂಡತಿ", Word3: "ಮಾವ", Word4: "ಅತ್ತೆ", Word5: "ಬಾವ"},
			"tamil":   {Word1: "கணவன்", Word2: "மனைவி", Word3: "மாமனார்", Word4: "அம்மாள்", Word5: "மைத்துனன்"},
			"english": {Word1: "Husband", Word2: "Wife", Word3: "Father-in-law", Word4: "Mother-in-law", Word5: "Brother-in-law"},
		},
	},
	"food": {
		1: {
			"hindi":   {Word1: "रोटी", Word2: "चावल", Word3: "दाल", Word4: "सब्जी", Word5: "पानी"},
			"bengali": {Word1: "রুটি", Word2: "ভাত", Word3: "ডাল", Word4: "তরকারি", Word5: "পানি"},
			"telugu":  {Word1: "రొట్టె", Word2: "బియ్యం", Word3: "పప్పు", Word4: "కూర", Word5: "నీరు"},
			"kannada": {Word1: "ರೊಟ್ಟಿ", Word2: "ಅಕ್ಕಿ", Word3: "ದಾಲ್", Word4: "ತರಕಾರಿ", Word5: "ನೀರು"},
			"tamil":   {Word1: "ரொட்டி", Word2: "அரிசி", Word3: "பருப்பு", Word4: "காய்கறி", Word5: "தண்ணீர்"},
			"english": {Word1: "Bread", Word2: "Rice", Word3: "Lentils", Word4: "Vegetable", Word5: "Water"},
		},
		2: {
			"hindi":   {Word1: "दूध", Word2: "चाय", Word3: "कॉफी", Word4: "फल", Word5: "सब्जी"},
			"bengali": {Word1: "দুধ", Word2: "চা", Word3: "কফি", Word4: "ফল", Word5: "সবজি"},
			"telugu":  {Word1: "పాలు", Word2: "టీ", Word3: "కాఫీ", Word4: "పండు", Word5: "కూరగాయలు"},
			"kannada": {Word1: "ಹಾಲು", Word2: "ಚಹಾ", Word3: "ಕಾಫಿ", Word4: "ಹಣ್ಣು", Word5: "ತರಕಾರಿ"},
			"tamil":   {Word1: "பால்", Word2: "தேநீர்", Word3: "காபி", Word4: "பழம்", Word5: "காய்கறி"},
			"english": {Word1: "Milk", Word2: "Tea", Word3: "Coffee", Word4: "Fruit", Word5: "Vegetable"},
		},
		3: {
			"hindi":   {Word1: "सेब", Word2: "केला", Word3: "संतरा", Word4: "आम", Word5: "अंगूर"},
			"bengali": {Word1: "আপেল", Word2: "কলা", Word3: "কমলা", Word4: "আম", Word5: "আঙ্গুর"},
			"telugu":  {Word1: "ఆపిల్", Word2: "బాదం", Word3: "నారింజ", Word4: "మామిడి", Word5: "ద్రాక్ష"},
			"kannada": {Word1: "ಸೇಬು", Word2: "ಬಾಳೆಹಣ್ಣು", Word3: "ಕಿತ್ತಳೆ", Word4: "ಮಾವು", Word5: "ದ್ರಾಕ್ಷಿ"},
			"tamil":   {Word1: "ஆப்பிள்", Word2: "வாழை", Word3: "ஆரஞ்சு", Word4: "மாம்பழம்", Word5: "திராட்சை"},
			"english": {Word1: "Apple", Word2: "Banana", Word3: "Orange", Word4: "Mango", Word5: "Grapes"},
		},
		4: {
			"hindi":   {Word1: "मांस", Word2: "मछली", Word3: "अंडा", Word4: "पनीर", Word5: "मक्खन"},
			"bengali": {Word1: "মাংস", Word2: "মাছ", Word3: "ডিম", Word4: "পনির", Word5: "মাখন"},
			"telugu":  {Word1: "మాంసం", Word2: "చేప", Word3: "గుడ్డు", Word4: "పనీర్", Word5: "వెన్న"},
			"kannada": {Word1: "ಮಾಂಸ", Word2: "ಮೀನು", Word3: "ಮೊಟ್ಟೆ", Word4: "ಪನೀರ್", Word5: "ಬೆಣ್ಣೆ"},
			"tamil":   {Word1: "இறைச்சி", Word2: "மீன்", Word3: "முட்டை", Word4: "பனீர்", Word5: "வெண்ணெய்"},
			"english": {Word1: "Meat", Word2: "Fish", Word3: "Egg", Word4: "Cheese", Word5: "Butter"},
		},
		5: {
			"hindi":   {Word1: "नमक", Word2: "चीनी", Word3: "तेल", Word4: "मसाला", Word5: "मिठाई"},
			"bengali": {Word1: "লবণ", Word2: "চিনি", Word3: "তেল", Word4: "মসলা", Word5: "মিষ্টি"},
			"telugu":  {Word1: "ఉప్పు", Word2: "చక్కెర", Word3: "నూనె", Word4: "మసాలా", Word5: "మిఠాయి"},
			"kannada": {Word1: "ಉಪ್ಪು", Word2: "ಸಕ್ಕರೆ", Word3: "ಎಣ್ಣೆ", Word4: "ಮಸಾಲೆ", Word5: "ಮಿಠಾಯಿ"},
			"tamil":   {Word1: "உப்பு", Word2: "சர்க்கரை", Word3: "எண்ணெய்", Word4: "மசாலா", Word5: "மிட்டாய்"},
			"english": {Word1: "Salt", Word2: "Sugar", Word3: "Oil", Word4: "Spice", Word5: "Sweet"},
		},
	},
}
