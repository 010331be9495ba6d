package wizard

// The wizard walks a fixed sequence of seven steps. Steps 0-5 collect one
// profile field each; step 6 asks the caller to repeat the password.
const (
	FieldName     = "name"
	FieldLocation = "location"
	FieldCategory = "category"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	StepCount        = 7
	ConfirmationStep = 6
)

const DefaultLanguage = "en-IN"

var stepFields = map[int]string{
	0: FieldName,
	1: FieldLocation,
	2: FieldCategory,
	3: FieldPhone,
	4: FieldEmail,
	5: FieldPassword,
}

// FieldForStep returns the profile field a step collects. The confirmation
// step has no field of its own.
func FieldForStep(step int) (string, bool) {
	field, ok := stepFields[step]
	return field, ok
}

var questionsByLanguage = map[string]map[int]string{
	"en-US": {
		0: "What is your name?",
		1: "Where do you live?",
		2: "What do you make or create?",
		3: "Your phone number? You can skip this.",
		4: "What is your email address? For example, say 'john at gmail dot com'.",
		5: "Please create a secure password for your account.",
		6: "For security, please say your password again to confirm.",
	},
	"en-IN": {
		0: "What is your name?",
		1: "Where do you live?",
		2: "What do you make or create?",
		3: "Your phone number? You can skip this.",
		4: "What is your email address? For example, say 'john at gmail dot com'.",
		5: "Please create a secure password for your account.",
		6: "For security, please say your password again to confirm.",
	},
	"hi-IN": {
		0: "आपका नाम क्या है?",
		1: "आप कहाँ रहते हैं?",
		2: "आप क्या बनाते हैं?",
		3: "आपका फोन नंबर? आप इसे छोड़ सकते हैं।",
		4: "आपका ईमेल पता क्या है? उदाहरण के लिए कहें 'john at gmail dot com'।",
		5: "कृपया अपने खाते के लिए एक सुरक्षित पासवर्ड बनाएं।",
		6: "सुरक्षा के लिए, कृपया पुष्टि के लिए अपना पासवर्ड फिर से कहें।",
	},
	"mr-IN": {
		0: "तुमचे नाव काय आहे?",
		1: "तुम्ही कुठे राहता?",
		2: "तुम्ही काय बनवता?",
		3: "तुमचा फोन नंबर? तुम्ही हे वगळू शकता।",
		4: "तुमचा ईमेल पत्ता काय आहे? उदाहरणार्थ 'john at gmail dot com' म्हणा।",
		5: "कृपया तुमच्या खात्यासाठी एक सुरक्षित पासवर्ड तयार करा।",
		6: "सुरक्षिततेसाठी, कृपया पुष्टीसाठी तुमचा पासवर्ड पुन्हा सांगा।",
	},
	"es-ES": {
		0: "¿Cuál es tu nombre?",
		1: "¿Dónde vives?",
		2: "¿Qué haces o creas?",
		3: "¿Tu número de teléfono? Puedes omitir esto.",
		4: "¿Cuál es tu dirección de correo electrónico? Por ejemplo, di 'john arroba gmail punto com'.",
		5: "Por favor, crea una contraseña segura para tu cuenta.",
		6: "Por seguridad, repite tu contraseña para confirmar.",
	},
	"fr-FR": {
		0: "Quel est votre nom?",
		1: "Où habitez-vous?",
		2: "Qu'est-ce que vous fabriquez ou créez?",
		3: "Votre numéro de téléphone? Vous pouvez l'ignorer.",
		4: "Quelle est votre adresse e-mail? Par exemple, dites 'john arobase gmail point com'.",
		5: "Veuillez créer un mot de passe sécurisé pour votre compte.",
		6: "Pour la sécurité, répétez votre mot de passe pour confirmer.",
	},
}

// SupportedLanguage reports whether a language has its own question set.
func SupportedLanguage(language string) bool {
	_, ok := questionsByLanguage[language]
	return ok
}

// QuestionForStep returns the spoken prompt for a step, falling back to
// English (India) for languages without their own question set.
func QuestionForStep(language string, step int) (string, bool) {
	questions, ok := questionsByLanguage[language]
	if !ok {
		questions = questionsByLanguage[DefaultLanguage]
	}
	question, ok := questions[step]
	return question, ok
}

var closingMessages = map[string]string{
	"en-US": "Thank you! Your artisan profile has been created. Welcome to ArtisanCraft.",
	"en-IN": "Thank you! Your artisan profile has been created. Welcome to ArtisanCraft.",
	"hi-IN": "धन्यवाद! आपकी कारीगर प्रोफ़ाइल बन गई है। ArtisanCraft में आपका स्वागत है।",
	"mr-IN": "धन्यवाद! तुमची कारागीर प्रोफाइल तयार झाली आहे। ArtisanCraft मध्ये स्वागत आहे।",
	"es-ES": "¡Gracias! Tu perfil de artesano ha sido creado. Bienvenido a ArtisanCraft.",
	"fr-FR": "Merci! Votre profil d'artisan a été créé. Bienvenue sur ArtisanCraft.",
}

// ClosingMessage returns the spoken confirmation after a successful
// submission.
func ClosingMessage(language string) string {
	if msg, ok := closingMessages[language]; ok {
		return msg
	}
	return closingMessages[DefaultLanguage]
}
