package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	unitModel "presensiku_backend/internals/features/units/model"
	authService "presensiku_backend/internals/features/users/auth/service"
	"presensiku_backend/internals/features/users/users/dto"
	"presensiku_backend/internals/features/users/users/model"
	helper "presensiku_backend/internals/helpers"
	"presensiku_backend/internals/helpers/excel"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromLocals(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fmt.Errorf("institusi tidak ditemukan di token")
	}
	return guid, nil
}

// ✅ GET semua user institusi (paginated, filter unit opsional)
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	institutionGUID, err := institutionGUIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	query := ctrl.DB.Model(&model.UserModel{}).
		Where("user_institution_guid = ?", institutionGUID)
	if unitGUID := c.Query("guidUnit"); unitGUID != "" {
		query = query.Where("user_unit_guid = ?", unitGUID)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("user_role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var users []model.UserModel
	if err := query.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.Success(c, "Success Find All User", fiber.Map{
		"users":      users,
		"pagination": helper.BuildPagination(paging, total, len(users)),
	})
}

// ✅ GET detail user
func (ctrl *UserController) GetByGUID(c *fiber.Ctx) error {
	var user model.UserModel
	err := ctrl.DB.Where("user_guid = ?", c.Params("guid")).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.Success(c, "Success Find User", user)
}

// ✅ GET profil user yang sedang login
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userGUID, _ := c.Locals("user_guid").(string)

	var user model.UserModel
	err := ctrl.DB.Where("user_guid = ?", userGUID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.Success(c, "Success Find Profile", user)
}

// ✅ POST admin mendaftarkan anggota institusinya
func (ctrl *UserController) RegisterByAdmin(c *fiber.Ctx) error {
	institutionGUID, err := institutionGUIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.RegisterUserByAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid")
	}

	if req.UnitGUID != nil && *req.UnitGUID != "" {
		var unit unitModel.UnitModel
		err := ctrl.DB.
			Where("unit_guid = ? AND unit_is_deleted = ?", *req.UnitGUID, false).
			First(&unit).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unit not found")
		}
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch unit")
		}
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Failed to hash password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user := model.UserModel{
		UserIdentity:        req.Identity,
		UserName:            req.Name,
		UserEmail:           req.Email,
		UserPhone:           &req.PhoneNumber,
		UserAddress:         req.Address,
		UserProfession:      req.Profession,
		UserBirthDate:       &birthDate,
		UserPassword:        hash,
		UserRole:            constants.RoleUser,
		UserInstitutionGUID: &institutionGUID,
		UserUnitGUID:        req.UnitGUID,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Failed to register user:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Email / identity sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Register User", user)
}

// ✅ POST import massal anggota unit dari file Excel.
// Kolom wajib: Identity, Nama, Email, Telepon, Password.
func (ctrl *UserController) ImportByExcel(c *fiber.Ctx) error {
	institutionGUID, err := institutionGUIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	unitGUID := c.FormValue("guidUnit")
	if unitGUID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "guidUnit wajib diisi")
	}
	var unit unitModel.UnitModel
	err = ctrl.DB.
		Where("unit_guid = ? AND unit_is_deleted = ?", unitGUID, false).
		First(&unit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Unit not found")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File excel wajib diupload")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File excel tidak bisa dibaca")
	}
	defer file.Close()

	rows, err := excel.ImportRows(file)
	if err != nil {
		log.Println("[ERROR] Failed to parse excel:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Format file excel tidak valid")
	}

	var users []model.UserModel
	var skipped []string
	for i, row := range rows {
		name := row["Nama"]
		email := row["Email"]
		password := row["Password"]
		if name == "" || email == "" || password == "" {
			skipped = append(skipped, fmt.Sprintf("baris %d: kolom wajib kosong", i+2))
			continue
		}

		hash, err := authService.HashPassword(password)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("baris %d: password tidak valid", i+2))
			continue
		}

		user := model.UserModel{
			UserName:            name,
			UserEmail:           email,
			UserPassword:        hash,
			UserRole:            constants.RoleUser,
			UserInstitutionGUID: &institutionGUID,
			UserUnitGUID:        &unit.UnitGUID,
		}
		if identity := row["Identity"]; identity != "" {
			user.UserIdentity = &identity
		}
		if phone := row["Telepon"]; phone != "" {
			user.UserPhone = &phone
		}
		users = append(users, user)
	}

	if len(users) == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Tidak ada baris valid di file excel", skipped)
	}

	// Satu transaksi supaya import gagal total atau berhasil total
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	}); err != nil {
		log.Println("[ERROR] Failed to import users:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Import gagal, ada email / identity duplikat")
	}

	log.Printf("[SUCCESS] Import %d user ke unit %s", len(users), unit.UnitGUID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Import User", fiber.Map{
		"imported": len(users),
		"skipped":  skipped,
	})
}

// ✅ PUT update data user
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_guid = ?", c.Params("guid")).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	updates := map[string]interface{}{}
	if req.Identity != nil {
		updates["user_identity"] = *req.Identity
	}
	if req.Name != nil {
		updates["user_name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["user_phone"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["user_address"] = *req.Address
	}
	if req.Profession != nil {
		updates["user_profession"] = *req.Profession
	}
	if req.UnitGUID != nil {
		if *req.UnitGUID == "" {
			updates["user_unit_guid"] = nil
		} else {
			var unit unitModel.UnitModel
			err := ctrl.DB.
				Where("unit_guid = ? AND unit_is_deleted = ?", *req.UnitGUID, false).
				First(&unit).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Unit not found")
			}
			if err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch unit")
			}
			updates["user_unit_guid"] = unit.UnitGUID
		}
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Failed to update user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.Success(c, "Success Update User", user)
}

// ✅ DELETE user
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.
		Where("user_guid = ?", c.Params("guid")).
		Delete(&model.UserModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete user:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "Success Delete User", nil)
}
