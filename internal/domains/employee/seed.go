package employee

// DefaultSeed là danh sách nhân viên mặc định, nạp một lần khi bảng rỗng.
var DefaultSeed = []Employee{
	{Name: "Abul", Value: 1357},
	{Name: "Adolfo", Value: 1224},
	{Name: "Alexander", Value: 2296},
	{Name: "Amber", Value: 1145},
	{Name: "Amy", Value: 4359},
	{Name: "Andy", Value: 1966},
	{Name: "Anna", Value: 4040},
	{Name: "Antony", Value: 449},
	{Name: "Ashley", Value: 8151},
	{Name: "Borja", Value: 9428},
	{Name: "Cecilia", Value: 2136},
	{Name: "Christopher", Value: 9035},
	{Name: "Dan", Value: 1475},
	{Name: "Dario", Value: 284},
	{Name: "David", Value: 948},
	{Name: "Elike", Value: 1860},
	{Name: "Ella", Value: 4549},
	{Name: "Ellie", Value: 5736},
	{Name: "Elliot", Value: 1020},
	{Name: "Emily", Value: 7658},
	{Name: "Faye", Value: 7399},
	{Name: "Fern", Value: 1422},
	{Name: "Francisco", Value: 5028},
	{Name: "Frank", Value: 3281},
	{Name: "Gary", Value: 9190},
	{Name: "Germaine", Value: 6437},
	{Name: "Greg", Value: 5929},
	{Name: "Harvey", Value: 8471},
	{Name: "Helen", Value: 963},
	{Name: "Huzairi", Value: 9491},
	{Name: "Izmi", Value: 8324},
	{Name: "James", Value: 6994},
	{Name: "Jarek", Value: 6581},
	{Name: "Jim", Value: 202},
	{Name: "John", Value: 261},
	{Name: "Jose", Value: 1605},
	{Name: "Josef", Value: 3714},
	{Name: "Karthik", Value: 4828},
	{Name: "Katrin", Value: 5393},
	{Name: "Lee", Value: 269},
	{Name: "Luke", Value: 5926},
	{Name: "Madiha", Value: 2329},
	{Name: "Marc", Value: 3651},
	{Name: "Marina", Value: 6903},
	{Name: "Mark", Value: 3368},
	{Name: "Marzena", Value: 7515},
	{Name: "Mohamed", Value: 1080},
	{Name: "Nichole", Value: 1221},
	{Name: "Nikita", Value: 8520},
	{Name: "Oliver", Value: 2868},
	{Name: "Patryk", Value: 1418},
	{Name: "Paul", Value: 4332},
	{Name: "Ralph", Value: 1581},
	{Name: "Raymond", Value: 7393},
	{Name: "Roman", Value: 4056},
	{Name: "Ryan", Value: 252},
	{Name: "Sara", Value: 2618},
	{Name: "Sean", Value: 691},
	{Name: "Seb", Value: 5395},
	{Name: "Sergey", Value: 8282},
	{Name: "Shaheen", Value: 3721},
	{Name: "Sharni", Value: 7737},
	{Name: "Sinu", Value: 3349},
	{Name: "Stephen", Value: 8105},
	{Name: "Tim", Value: 8386},
	{Name: "Tina", Value: 5133},
	{Name: "Tom", Value: 7553},
	{Name: "Tony", Value: 4432},
	{Name: "Tracy", Value: 1771},
	{Name: "Tristan", Value: 2030},
	{Name: "Victor", Value: 1046},
	{Name: "Yury", Value: 1854},
}
