// Package i18n holds the board's Khmer and English texts.
package i18n

import "strings"

// Language is a board language code.
type Language string

const (
	English Language = "en"
	Khmer   Language = "km"
)

// Languages lists the supported languages in switcher order.
var Languages = []Language{Khmer, English}

// Parse returns the language for code. Unknown codes yield English and false.
func Parse(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case Khmer:
		return Khmer, true
	case English:
		return English, true
	}
	return English, false
}

// Name returns the label shown on the language switcher.
func (l Language) Name() string {
	if l == Khmer {
		return "ខ្មែរ"
	}
	return "EN"
}

// T returns the text for key in this language, or the key itself when the
// language has no such text. An empty text is returned as is.
func (l Language) T(key string) string {
	table, ok := tables[l]
	if !ok {
		table = tables[English]
	}
	if text, ok := table[key]; ok {
		return text
	}
	return key
}

// Has reports whether the language defines key.
func (l Language) Has(key string) bool {
	_, ok := tables[l][key]
	return ok
}

// DonationItemKeys are the default donation items, in display order.
var DonationItemKeys = []string{
	"donationItems.clothes",
	"donationItems.snacks",
	"donationItems.books",
	"donationItems.stationery",
	"donationItems.toys",
}

var tables = map[Language]map[string]string{
	Khmer: {
		"hero.title.prefix":   "មូលនិធិ",
		"hero.title.number":   "៥ពាន់",
		"hero.title.suffix":   "កាបូបនៃស្នាមញញឹម",
		"hero.goal":           "កាបូបដែលបានបញ្ជូនដល់ក្មេងៗ",
		"hero.bags":           "កាបូប",
		"hero.lastUpdated":    "កែប្រែចុងក្រោយ​:",
		"hero.milestone":      "គោលដៅទី១៖ %d កាបូប",

		"about.title":       "អំពីមូលនិធិ",
		"about.description": "បណ្ឌិត្យសភាបច្ចេកវិទ្យាឌីជីថលកម្ពុជា (CADT), Makerspace និងសមាគមនិស្សិតមានសេចក្ដីរំភើបដែលបានចូលរួមរៀបចំ មូលនិធិ៥ពាន់កាបូបនៃស្នាមញញឹម ដែលយើងមានគោលបំណងរួម ក្នុងការបរិច្ចាគដើម្បីផ្តល់ស្នាមញញឹមដល់ កុមារា កុមារីតូចៗ ជាកាបូបផ្ទុកដោយសម្ភារសិក្សា អាហារ សំលៀកបំពាក់ជាដើមដែលកំពុងត្រូវការជំនួយ។ ហើយអ្វីដែលកាន់តែរំភើបជាងនេះគឺ សិស្សច្បង សិស្សប្អូន និងមិត្តភក្តិរួមជំនាន់ទាំងអស់ ក៏អាចក្លាយជាផ្នែកមួយនៃការចូលរួមរៀបចំ មូលនិធិនេះផងដែរ។ ការចូលរួមរបស់និស្សិតទាំងអស់ មិនថាការចូលរួមជាកម្លាំង ការបរិច្ចាគជាថវិការ​ អាហារ ឬជាសម្ភារៈប្រើប្រាស់នានាក្ដី ពិតជាបានបង្ហាញនូវការរួបរួមគ្នា សាមគ្គីគ្នា និងបង្ហាញនូវស្មារតីស្នេហាជាតិដោយយកចិត្តទុកដាក់នៅក្នុងគ្រាដ៏លំបាកនេះ។",

		"donationItems.title":      "សម្ភារៈតម្រូវការបរិច្ចាគ",
		"donationItems.clothes":    "អាវរងារ និងសម្លៀកបំពាក់ផ្សេងៗ",
		"donationItems.snacks":     "ភេសជ្ជៈនំចំណី",
		"donationItems.books":      "សៀវភៅសម្រាប់អាន",
		"donationItems.stationery": "សម្ភារៈសម្រាប់សរសេរ និងគូរ",
		"donationItems.toys":       "សម្ភារៈក្មេងលេង",

		"activities":      "សកម្មភាពខ្លះៗរបស់យើង",
		"activities.prev": "មុន",
		"activities.next": "បន្ទាប់",
		"activities.none": "មិនទាន់មានរូបភាព",

		"location.title":         "ទីតាំងទទួលបរិច្ចាគ៖",
		"location.makerspace":    "Innovation Center - CADT",
		"location.publicService": "មជ្ឈមណ្ឌលផ្ដល់សេវាសាធារណៈ (Public Service Center) របស់ក្រសួងប្រៃសណីយ៍ និងទូរគមនាគមន៍",
		"location.directions":    "Get Directions",

		"qr.title.prefix": "អាចបរិច្ចាគតាមរយៈ",
		"qr.title.suffix": "ខាងក្រោមនេះ",

		"message.title":               "សរសេរសារជូនកុមារ",
		"message.yourName":            "ឈ្មោះរបស់អ្នក (Your Name)",
		"message.yourNamePlaceholder": "បញ្ចូលឈ្មោះរបស់អ្នក",
		"message.messageToKids":       "សារទៅកុមារ (Message to Kids)",
		"message.messagePlaceholder":  "ខ្លឹមសារនៃសារបស់អ្នក...",
		"message.sendButton":          "បញ្ជូនសារ (Send Message)",
		"message.fromDonors":          "សារពីសប្បុរសជន (Messages from Donors)",
		"message.noMessages":          "មិនទាន់មានសារនៅឡើយទេ។ សូមក្លាយជាអ្នកដំបូងក្នុងការផ្ញើសារលើកទឹកចិត្តទៅកុមារៗ!",
		"message.noMessagesEn":        "(No messages yet. Be the first to send an encouraging message to the kids!)",

		"notification.success":  "សារត្រូវបានបញ្ជូនដោយជោគជ័យ! (Message sent successfully!)",
		"notification.failed":   "បរាជ័យក្នុងការបញ្ជូនសារ (Failed to send message)",
		"notification.error":    "មានបញ្ហាក្នុងការបញ្ជូនសារ (Error sending message)",
		"notification.fillForm": "សូមបំពេញឈ្មោះ និងសាររបស់អ្នក (Please fill in your name and message)",

		"international.title":       "បរិច្ចាគពីបរទេស",
		"international.description": "សម្រាប់អ្នកបរិច្ចាគពីបរទេស សូមចុចលើប៊ូតុងខាងក្រោមដើម្បីបរិច្ចាគតាមរយៈវេទិកាអន្តរជាតិ",
		"international.button":      "បរិច្ចាគតាមរយៈ Khmer Care",

		"footer.organizedBy": "រៀបចំដោយ៖",
	},
	English: {
		"hero.title.prefix": "Foundation of",
		"hero.title.number": "5000",
		"hero.title.suffix": "Bags of Smiles",
		"hero.goal":         "Bags Delivered to Kids",
		"hero.bags":         "Bags",
		"hero.lastUpdated":  "Last updated:",
		"hero.milestone":    "Milestone: %d bags",

		"about.title":       "About the Foundation",
		"about.description": "The Cambodia Academy of Digital Technology (CADT), Makerspace, and Student Association are excited to organize the 5000 Bags of Smiles Foundation. We aim to bring smiles to children by donating bags filled with school supplies, food, clothing, and other essentials to those in need. What makes this even more exciting is that students and friends can also be part of organizing this foundation. The participation of all students, whether through volunteer work, donations of funds, food, or various supplies, truly demonstrates unity, solidarity, and patriotic spirit by caring during these difficult times.",

		"donationItems.title":      "Needed Donation Items",
		"donationItems.clothes":    "Clothes and various apparel",
		"donationItems.snacks":     "Beverages and snacks",
		"donationItems.books":      "Books for reading",
		"donationItems.stationery": "Writing and drawing supplies",
		"donationItems.toys":       "Toys and playthings",

		"activities":      "Our Activities",
		"activities.prev": "Prev",
		"activities.next": "Next",
		"activities.none": "No pictures yet",

		"location.title":         "Donation Locations:",
		"location.makerspace":    "Innovation Center - CADT",
		"location.publicService": "Public Service Center of the Ministry of Posts and Telecommunications",
		"location.directions":    "Get Directions",

		"qr.title.prefix": "You can donate via",
		"qr.title.suffix": "below",

		"message.title":               "Write a Message to the Kids",
		"message.yourName":            "Your Name",
		"message.yourNamePlaceholder": "Enter your name",
		"message.messageToKids":       "Message to Kids",
		"message.messagePlaceholder":  "Write an encouraging message to the kids...",
		"message.sendButton":          "Send Message",
		"message.fromDonors":          "Messages from Donors",
		"message.noMessages":          "No messages yet. Be the first to send an encouraging message to the kids!",
		"message.noMessagesEn":        "",

		"notification.success":  "Message sent successfully!",
		"notification.failed":   "Failed to send message",
		"notification.error":    "Error sending message",
		"notification.fillForm": "Please fill in your name and message",

		"international.title":       "International Donation",
		"international.description": "For international donors, please click the button below to donate through our international platform",
		"international.button":      "Donate via Khmer Care",

		"footer.organizedBy": "Organized by:",
	},
}
