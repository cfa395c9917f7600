package analysis

import "github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

// catalogEntry binds a lowercase keyword to the medicine it identifies.
// The slice keeps a fixed iteration order so results are deterministic;
// brand and generic names of the same drug are separate entries and can
// both match the same text.
type catalogEntry struct {
	Keyword string
	Info    ds.MedicineInfo
}

var medicineCatalog = []catalogEntry{
	// Antibiotics
	{"phexin", ds.MedicineInfo{
		Name:         "Phexin (Cephalexin)",
		Purpose:      "Antibiotic for bacterial infections",
		Dosage:       "500mg 2-3 times daily",
		Price:        "৳30-80",
		Alternatives: []string{"Amoxicillin", "Azithromycin", "Clarithromycin"},
		FoodToAvoid:  []string{"Dairy products (2 hours before/after)", "Alcohol"},
		SideEffects:  []string{"Diarrhea", "Nausea", "Stomach upset", "Allergic reactions"},
	}},
	{"amoxicillin", ds.MedicineInfo{
		Name:         "Amoxicillin",
		Purpose:      "Antibiotic for bacterial infections",
		Dosage:       "As prescribed by doctor",
		Price:        "৳20-50",
		Alternatives: []string{"Azithromycin", "Clarithromycin", "Cephalexin"},
		FoodToAvoid:  []string{"Dairy products (2 hours before/after)"},
		SideEffects:  []string{"Diarrhea", "Nausea", "Allergic reactions"},
	}},
	{"azithromycin", ds.MedicineInfo{
		Name:         "Azithromycin",
		Purpose:      "Antibiotic for bacterial infections",
		Dosage:       "As prescribed by doctor",
		Price:        "৳40-100",
		Alternatives: []string{"Amoxicillin", "Clarithromycin", "Cephalexin"},
		FoodToAvoid:  []string{"Dairy products", "Alcohol"},
		SideEffects:  []string{"Nausea", "Diarrhea", "Stomach pain"},
	}},

	// COVID-19 and antiviral medications
	{"remdec", ds.MedicineInfo{
		Name:         "Remdec (Remdesivir)",
		Purpose:      "Antiviral medication for COVID-19 treatment",
		Dosage:       "200mg STAT, then 100mg once daily for 4 days",
		Price:        "৳5000-15000",
		Alternatives: []string{"Molnupiravir", "Paxlovid", "Favipiravir"},
		FoodToAvoid:  []string{"Grapefruit juice", "Alcohol", "High-fat meals"},
		SideEffects:  []string{"Nausea", "Liver problems", "Kidney issues", "Allergic reactions"},
	}},
	{"remdesivir", ds.MedicineInfo{
		Name:         "Remdesivir",
		Purpose:      "Antiviral medication for COVID-19 treatment",
		Dosage:       "200mg STAT, then 100mg once daily for 4 days",
		Price:        "৳5000-15000",
		Alternatives: []string{"Molnupiravir", "Paxlovid", "Favipiravir"},
		FoodToAvoid:  []string{"Grapefruit juice", "Alcohol", "High-fat meals"},
		SideEffects:  []string{"Nausea", "Liver problems", "Kidney issues", "Allergic reactions"},
	}},
	{"actemra", ds.MedicineInfo{
		Name:         "Actemra (Tocilizumab)",
		Purpose:      "Immunosuppressive medication for severe COVID-19",
		Dosage:       "400mg once daily for 2 doses with 2-day gap",
		Price:        "৳15000-30000",
		Alternatives: []string{"Baricitinib", "Dexamethasone", "Methylprednisolone"},
		FoodToAvoid:  []string{"Raw foods", "Unpasteurized dairy", "Alcohol"},
		SideEffects:  []string{"Infection risk", "Liver problems", "Allergic reactions", "Blood clotting issues"},
	}},
	{"tocilizumab", ds.MedicineInfo{
		Name:         "Tocilizumab",
		Purpose:      "Immunosuppressive medication for severe COVID-19",
		Dosage:       "400mg once daily for 2 doses with 2-day gap",
		Price:        "৳15000-30000",
		Alternatives: []string{"Baricitinib", "Dexamethasone", "Methylprednisolone"},
		FoodToAvoid:  []string{"Raw foods", "Unpasteurized dairy", "Alcohol"},
		SideEffects:  []string{"Infection risk", "Liver problems", "Allergic reactions", "Blood clotting issues"},
	}},

	// Pain relievers and fever reducers
	{"paracetamol", ds.MedicineInfo{
		Name:         "Paracetamol/Acetaminophen",
		Purpose:      "Fever reducer and pain reliever",
		Dosage:       "500-1000mg every 4-6 hours",
		Price:        "৳5-15",
		Alternatives: []string{"Ibuprofen", "Aspirin", "Diclofenac"},
		FoodToAvoid:  []string{"Alcohol", "High-fat meals"},
		SideEffects:  []string{"Nausea", "Liver problems (in high doses)"},
	}},
	{"napa", ds.MedicineInfo{
		Name:         "Napa (Paracetamol)",
		Purpose:      "Fever reducer and pain reliever",
		Dosage:       "500-1000mg every 4-6 hours",
		Price:        "৳5-15",
		Alternatives: []string{"Ace", "Paracetamol", "Fevco"},
		FoodToAvoid:  []string{"Alcohol", "High-fat meals"},
		SideEffects:  []string{"Nausea", "Liver problems (in high doses)"},
	}},
	{"zeedol", ds.MedicineInfo{
		Name:         "Zeedol PT (Paracetamol + Tramadol)",
		Purpose:      "Pain reliever and fever reducer",
		Dosage:       "As prescribed by doctor",
		Price:        "৳15-30",
		Alternatives: []string{"Paracetamol", "Ibuprofen", "Diclofenac"},
		FoodToAvoid:  []string{"Alcohol", "Grapefruit juice"},
		SideEffects:  []string{"Drowsiness", "Nausea", "Constipation", "Dizziness"},
	}},
	{"ibuprofen", ds.MedicineInfo{
		Name:         "Ibuprofen",
		Purpose:      "Pain reliever, fever reducer, anti-inflammatory",
		Dosage:       "200-400mg every 4-6 hours",
		Price:        "৳8-20",
		Alternatives: []string{"Paracetamol", "Aspirin", "Diclofenac"},
		FoodToAvoid:  []string{"Alcohol", "Spicy foods"},
		SideEffects:  []string{"Stomach upset", "Heartburn", "Dizziness"},
	}},

	// Stomach acid reducers
	{"omeprazole", ds.MedicineInfo{
		Name:         "Omeprazole",
		Purpose:      "Reduce stomach acid production",
		Dosage:       "20-40mg daily",
		Price:        "৳15-30",
		Alternatives: []string{"Esomeprazole", "Lansoprazole", "Pantoprazole"},
		FoodToAvoid:  []string{"Spicy foods", "Citrus fruits", "Coffee"},
		SideEffects:  []string{"Headache", "Diarrhea", "Vitamin B12 deficiency"},
	}},
	{"sergel", ds.MedicineInfo{
		Name:         "Sergel (Omeprazole)",
		Purpose:      "Reduce stomach acid production",
		Dosage:       "20-40mg daily",
		Price:        "৳15-30",
		Alternatives: []string{"Esomeprazole", "Lansoprazole", "Pantoprazole"},
		FoodToAvoid:  []string{"Spicy foods", "Citrus fruits", "Coffee"},
		SideEffects:  []string{"Headache", "Diarrhea", "Vitamin B12 deficiency"},
	}},
	{"pantoprazole", ds.MedicineInfo{
		Name:         "Pantoprazole",
		Purpose:      "Reduce stomach acid production",
		Dosage:       "20-40mg daily",
		Price:        "৳20-40",
		Alternatives: []string{"Omeprazole", "Esomeprazole", "Lansoprazole"},
		FoodToAvoid:  []string{"Spicy foods", "Citrus fruits", "Coffee"},
		SideEffects:  []string{"Headache", "Diarrhea", "Nausea"},
	}},

	// Oral care products
	{"stolin", ds.MedicineInfo{
		Name:         "Stolin Gum Paint",
		Purpose:      "Oral antiseptic for gum problems",
		Dosage:       "Apply 2-3 times daily",
		Price:        "৳50-120",
		Alternatives: []string{"Betadine mouthwash", "Chlorhexidine", "Salt water rinse"},
		FoodToAvoid:  []string{"Spicy foods", "Hot foods", "Alcohol"},
		SideEffects:  []string{"Temporary staining", "Taste changes", "Mild irritation"},
	}},
	{"colgate", ds.MedicineInfo{
		Name:         "Colgate Plax Mouthwash",
		Purpose:      "Oral hygiene and fresh breath",
		Dosage:       "Rinse 2-3 times daily",
		Price:        "৳80-150",
		Alternatives: []string{"Listerine", "Betadine mouthwash", "Salt water rinse"},
		FoodToAvoid:  []string{"None specific"},
		SideEffects:  []string{"Temporary burning sensation", "Taste changes"},
	}},
	{"oral-b", ds.MedicineInfo{
		Name:         "Oral-B Pro 2 2000N",
		Purpose:      "Electric toothbrush for better oral hygiene",
		Dosage:       "Use 2 times daily for 2 minutes",
		Price:        "৳2000-4000",
		Alternatives: []string{"Manual toothbrush", "Other electric toothbrushes"},
		FoodToAvoid:  []string{"None specific"},
		SideEffects:  []string{"Gum sensitivity initially", "None serious"},
	}},

	// Antihistamines
	{"cetirizine", ds.MedicineInfo{
		Name:         "Cetirizine",
		Purpose:      "Antihistamine for allergies",
		Dosage:       "10mg once daily",
		Price:        "৳10-25",
		Alternatives: []string{"Loratadine", "Fexofenadine", "Chlorpheniramine"},
		FoodToAvoid:  []string{"Alcohol", "Grapefruit juice"},
		SideEffects:  []string{"Drowsiness", "Dry mouth", "Headache"},
	}},
	{"loratadine", ds.MedicineInfo{
		Name:         "Loratadine",
		Purpose:      "Antihistamine for allergies",
		Dosage:       "10mg once daily",
		Price:        "৳15-30",
		Alternatives: []string{"Cetirizine", "Fexofenadine", "Chlorpheniramine"},
		FoodToAvoid:  []string{"Alcohol", "Grapefruit juice"},
		SideEffects:  []string{"Headache", "Dry mouth", "Fatigue"},
	}},

	// Antacids
	{"ranitidine", ds.MedicineInfo{
		Name:         "Ranitidine",
		Purpose:      "Reduce stomach acid and treat ulcers",
		Dosage:       "150-300mg twice daily",
		Price:        "৳10-25",
		Alternatives: []string{"Omeprazole", "Pantoprazole", "Famotidine"},
		FoodToAvoid:  []string{"Spicy foods", "Citrus fruits", "Coffee"},
		SideEffects:  []string{"Headache", "Dizziness", "Constipation"},
	}},

	// Vitamins and supplements
	{"vitamin", ds.MedicineInfo{
		Name:         "Vitamin Supplements",
		Purpose:      "Nutritional support",
		Dosage:       "As prescribed by doctor",
		Price:        "৳50-200",
		Alternatives: []string{"Natural food sources", "Other vitamin brands"},
		FoodToAvoid:  []string{"None specific"},
		SideEffects:  []string{"Nausea (if taken on empty stomach)", "None serious"},
	}},

	// Cough and cold medicines
	{"dextromethorphan", ds.MedicineInfo{
		Name:         "Dextromethorphan",
		Purpose:      "Cough suppressant",
		Dosage:       "As prescribed by doctor",
		Price:        "৳20-50",
		Alternatives: []string{"Honey", "Salt water gargle", "Other cough syrups"},
		FoodToAvoid:  []string{"Alcohol", "Grapefruit juice"},
		SideEffects:  []string{"Drowsiness", "Dizziness", "Nausea"},
	}},
}
